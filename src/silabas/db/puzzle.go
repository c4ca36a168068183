package db

import (
	"context"
	"github.com/jonbodner/proteus"
	"strings"
)

// Puzzle is a pending build-a-word round, one per user per channel. Pieces holds the
// shuffled syllables separated by spaces.
type Puzzle struct {
	ChannelID int    `prof:"channel_id"`
	UserID    int    `prof:"user_id"`
	Target    string `prof:"target"`
	Pieces    string `prof:"pieces"`
}

func (p Puzzle) Syllables() []string {
	return strings.Fields(p.Pieces)
}

var PuzzleDAO PuzzleDaoImpl

type PuzzleDaoImpl struct {
	Upsert func(ctx context.Context, e proteus.ContextExecutor, p Puzzle) (int64, error)                   `proq:"q:upsert" prop:"p"`
	Find   func(ctx context.Context, e proteus.ContextQuerier, channelID int, userID int) (Puzzle, error)  `proq:"q:find" prop:"channelID,userID"`
	Delete func(ctx context.Context, e proteus.ContextExecutor, channelID int, userID int) (int64, error) `proq:"q:delete" prop:"channelID,userID"`
}

func init() {
	m := proteus.MapMapper{
		"upsert": `INSERT INTO puzzle (channel_id, user_id, target, pieces)
				   VALUES (:p.ChannelID:, :p.UserID:, :p.Target:, :p.Pieces:)
				   ON CONFLICT (channel_id, user_id)
				   DO UPDATE SET target = excluded.target, pieces = excluded.pieces`,
		"find":   `SELECT * FROM puzzle WHERE channel_id = :channelID: AND user_id = :userID:`,
		"delete": `DELETE FROM puzzle WHERE channel_id = :channelID: AND user_id = :userID:`,
	}
	err := proteus.ShouldBuild(context.Background(), &PuzzleDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
}
