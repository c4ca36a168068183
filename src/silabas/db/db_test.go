package db_test

import (
	"context"
	"database/sql"
	"github.com/kalexmills/silabas/src/silabas/db"
	"github.com/stretchr/testify/assert"
	"log"
	"os"
	"path/filepath"
	"testing"
)

var DB *sql.DB

func TestMain(m *testing.M) {
	dbPath := filepath.Join(os.TempDir(), "silabas-test.db")

	// delete any existing database
	err := os.Remove(dbPath)
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("could not remove database file %s: %v", dbPath, err)
	}

	DB, err = db.Open(dbPath)
	if err != nil {
		log.Fatalf("could not open database %s: %v", dbPath, err)
	}

	code := m.Run()

	DB.Close()
	os.Remove(dbPath)
	os.Exit(code)
}

func TestBootstrapDB_Idempotent(t *testing.T) {
	assert.NoError(t, db.BootstrapDB(DB))
}

func TestGuildConfigDAO_Upsert(t *testing.T) {
	ctx := context.Background()

	_, err := db.GuildConfigDAO.Upsert(ctx, DB, db.GuildConfig{GuildID: 1, Flags: 12, Tolerance: 0.6})
	assert.NoError(t, err)

	conf, err := db.GuildConfigDAO.FindByID(ctx, DB, 1)
	assert.NoError(t, err)
	assert.EqualValues(t, db.GuildConfig{GuildID: 1, Flags: 12, Tolerance: 0.6}, conf)

	_, err = db.GuildConfigDAO.Upsert(ctx, DB, db.GuildConfig{GuildID: 1, Flags: 4, Tolerance: 0.8})
	assert.NoError(t, err)

	conf, err = db.GuildConfigDAO.FindByID(ctx, DB, 1)
	assert.NoError(t, err)
	assert.EqualValues(t, db.GuildConfig{GuildID: 1, Flags: 4, Tolerance: 0.8}, conf)
}

func TestChannelConfigDAO_Upsert(t *testing.T) {
	ctx := context.Background()

	_, err := db.ChannelConfigDAO.Upsert(ctx, DB, 10, 12)
	assert.NoError(t, err)

	conf, err := db.ChannelConfigDAO.FindByID(ctx, DB, 10)
	assert.NoError(t, err)
	assert.EqualValues(t, db.ChannelConfig{ChannelID: 10, Flags: 12}, conf)

	_, err = db.ChannelConfigDAO.Upsert(ctx, DB, 10, 4)
	assert.NoError(t, err)

	conf, err = db.ChannelConfigDAO.FindByID(ctx, DB, 10)
	assert.NoError(t, err)
	assert.EqualValues(t, db.ChannelConfig{ChannelID: 10, Flags: 4}, conf)

	conf, err = db.ChannelConfigDAO.FindByID(ctx, DB, 11)
	assert.NoError(t, err)
	assert.Zero(t, conf.Flags)
}

func TestLookupFlags(t *testing.T) {
	ctx := context.Background()

	_, err := db.ChannelConfigDAO.Upsert(ctx, DB, 20, int64(db.ConfigSplitWords|db.ConfigUnderlineVowels|db.ConfigExplicit))
	assert.NoError(t, err)
	_, err = db.GuildConfigDAO.Upsert(ctx, DB, db.GuildConfig{GuildID: 2, Flags: db.ConfigBuildPuzzle | db.ConfigExplicit})
	assert.NoError(t, err)

	flags, err := db.LookupFlags(ctx, DB, 2, 20)
	assert.NoError(t, err)

	assert.True(t, flags.Explicit())
	assert.True(t, flags.SplitWords())
	assert.True(t, flags.UnderlineVowels())
	assert.True(t, flags.BuildPuzzle())
	assert.False(t, flags.RevealAnswer())
	assert.False(t, flags.TrackProgress())

	flags, err = db.LookupFlags(ctx, DB, 99, 99)
	assert.NoError(t, err)
	assert.False(t, flags.Explicit())
}

func TestPuzzleDAO(t *testing.T) {
	ctx := context.Background()

	_, err := db.PuzzleDAO.Upsert(ctx, DB, db.Puzzle{ChannelID: 1, UserID: 7, Target: "mesa", Pieces: "sa me"})
	assert.NoError(t, err)

	p, err := db.PuzzleDAO.Find(ctx, DB, 1, 7)
	assert.NoError(t, err)
	assert.Equal(t, "mesa", p.Target)
	assert.Equal(t, []string{"sa", "me"}, p.Syllables())

	_, err = db.PuzzleDAO.Upsert(ctx, DB, db.Puzzle{ChannelID: 1, UserID: 7, Target: "perro", Pieces: "rro pe"})
	assert.NoError(t, err)

	p, err = db.PuzzleDAO.Find(ctx, DB, 1, 7)
	assert.NoError(t, err)
	assert.Equal(t, "perro", p.Target)

	rows, err := db.PuzzleDAO.Delete(ctx, DB, 1, 7)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	p, err = db.PuzzleDAO.Find(ctx, DB, 1, 7)
	assert.NoError(t, err)
	assert.Empty(t, p.Target)
}

func TestRecordAttempt(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, db.RecordAttempt(ctx, DB, 3, 7, false))
	assert.NoError(t, db.RecordAttempt(ctx, DB, 3, 7, true))
	assert.NoError(t, db.RecordAttempt(ctx, DB, 3, 7, true))

	p, err := db.ProgressDAO.FindByID(ctx, DB, 3, 7)
	assert.NoError(t, err)
	assert.Equal(t, db.Progress{GuildID: 3, UserID: 7, Attempts: 3, Solved: 2}, p)

	p, err = db.ProgressDAO.FindByID(ctx, DB, 3, 8)
	assert.NoError(t, err)
	assert.Zero(t, p.Attempts)
}

func TestConfigFlag_String(t *testing.T) {
	assert.Equal(t, "none", db.ConfigFlag(0).String())
	assert.Equal(t, "none", db.ConfigExplicit.String())
	assert.Equal(t, "SplitWords, BuildPuzzle", (db.ConfigSplitWords | db.ConfigBuildPuzzle | db.ConfigExplicit).String())
}
