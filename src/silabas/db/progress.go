package db

import (
	"context"
	"fmt"
	"github.com/jonbodner/proteus"
)

type Progress struct {
	GuildID  int `prof:"guild_id"`
	UserID   int `prof:"user_id"`
	Attempts int `prof:"attempts"`
	Solved   int `prof:"solved"`
}

var ProgressDAO ProgressDaoImpl

type ProgressDaoImpl struct {
	// Record counts one attempt; solved is 1 when the attempt was accepted, 0 otherwise.
	Record   func(ctx context.Context, e proteus.ContextExecutor, guildID int, userID int, solved int) (int64, error) `proq:"q:record" prop:"guildID,userID,solved"`
	FindByID func(ctx context.Context, e proteus.ContextQuerier, guildID int, userID int) (Progress, error)          `proq:"q:findByID" prop:"guildID,userID"`
}

func init() {
	m := proteus.MapMapper{
		"record": `INSERT INTO progress (guild_id, user_id, attempts, solved)
				   VALUES (:guildID:, :userID:, 1, :solved:)
				   ON CONFLICT (guild_id, user_id)
				   DO UPDATE SET attempts = attempts + 1, solved = solved + excluded.solved`,
		"findByID": `SELECT * FROM progress WHERE guild_id = :guildID: AND user_id = :userID:`,
	}
	err := proteus.ShouldBuild(context.Background(), &ProgressDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
}

// RecordAttempt stores the outcome of a puzzle answer.
func RecordAttempt(ctx context.Context, e proteus.ContextExecutor, guildID int, userID int, ok bool) error {
	solved := 0
	if ok {
		solved = 1
	}
	_, err := ProgressDAO.Record(ctx, e, guildID, userID, solved)
	if err != nil {
		return fmt.Errorf("error while recording progress: %w", err)
	}
	return nil
}
