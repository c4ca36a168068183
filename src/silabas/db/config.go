package db

import (
	"context"
	"github.com/jonbodner/proteus"
	"strings"
)

type ConfigFlag int64

func (f ConfigFlag) SplitWords() bool {
	return f&ConfigSplitWords > 0
}

func (f ConfigFlag) UnderlineVowels() bool {
	return f&ConfigUnderlineVowels > 0
}

func (f ConfigFlag) BuildPuzzle() bool {
	return f&ConfigBuildPuzzle > 0
}

func (f ConfigFlag) RevealAnswer() bool {
	return f&ConfigRevealAnswer > 0
}

func (f ConfigFlag) TrackProgress() bool {
	return f&ConfigTrackProgress > 0
}

// Explicit is set once an admin has stored flags for a guild or channel; until then the
// bot's configured defaults apply.
func (f ConfigFlag) Explicit() bool {
	return f&ConfigExplicit > 0
}

func (f ConfigFlag) Or(other ConfigFlag) ConfigFlag {
	return f | other
}

func (f ConfigFlag) And(other ConfigFlag) ConfigFlag {
	return f & other
}

func (f ConfigFlag) String() string {
	var names []string
	for _, feat := range Features {
		if f&feat.Flag > 0 {
			names = append(names, feat.Name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

const (
	ConfigSplitWords ConfigFlag = 1 << iota
	ConfigUnderlineVowels
	ConfigBuildPuzzle
	ConfigRevealAnswer
	ConfigTrackProgress

	ConfigExplicit ConfigFlag = 1 << 62
)

// Features lists the user-facing flags by the name admins use for them.
var Features = []struct {
	Name string
	Flag ConfigFlag
}{
	{"SplitWords", ConfigSplitWords},
	{"UnderlineVowels", ConfigUnderlineVowels},
	{"BuildPuzzle", ConfigBuildPuzzle},
	{"RevealAnswer", ConfigRevealAnswer},
	{"TrackProgress", ConfigTrackProgress},
}

// LookupFlags returns the union of guild and channel flags. The result is only
// meaningful when Explicit is set.
func LookupFlags(ctx context.Context, e proteus.ContextQuerier, guildID int, channelID int) (ConfigFlag, error) {
	chanConf, err := ChannelConfigDAO.FindByID(ctx, e, channelID)
	if err != nil {
		return 0, err
	}
	guildConf, err := GuildConfigDAO.FindByID(ctx, e, guildID)
	if err != nil {
		return 0, err
	}
	return guildConf.Flags.Or(chanConf.Flags), nil
}

type ChannelConfig struct {
	ChannelID int        `prof:"channel_id"`
	Flags     ConfigFlag `prof:"flags"`
}

var ChannelConfigDAO ChannelConfigDAOImpl

type ChannelConfigDAOImpl struct {
	Upsert   func(ctx context.Context, e proteus.ContextExecutor, channelID int, flags int64) (int64, error) `proq:"q:chan_upsert" prop:"channelID,flags"`
	FindByID func(ctx context.Context, e proteus.ContextQuerier, channelID int) (ChannelConfig, error)    `proq:"q:chan_findByID" prop:"channelID"`
}

type GuildConfig struct {
	GuildID   int        `prof:"guild_id"`
	Flags     ConfigFlag `prof:"flags"`
	Tolerance float64    `prof:"tolerance"`
}

var GuildConfigDAO GuildConfigDAOImpl

type GuildConfigDAOImpl struct {
	Upsert   func(ctx context.Context, e proteus.ContextExecutor, config GuildConfig) (int64, error) `proq:"q:guild_upsert" prop:"config"`
	FindByID func(ctx context.Context, e proteus.ContextQuerier, guildID int) (GuildConfig, error) `proq:"q:guild_findByID" prop:"guildID"`
}

func init() {
	ctx := context.Background()
	m := proteus.MapMapper{
		"chan_upsert": `INSERT INTO channel_config (channel_id, flags)
						VALUES (:channelID:, :flags:)
						ON CONFLICT (channel_id)
						DO UPDATE SET flags = excluded.flags`,
		"chan_findByID": `SELECT * FROM channel_config WHERE channel_id = :channelID:`,
		"guild_upsert": `INSERT INTO guild_config (guild_id, flags, tolerance)
						VALUES (:config.GuildID:, :config.Flags:, :config.Tolerance:)
						ON CONFLICT (guild_id)
						DO UPDATE SET flags = excluded.flags, tolerance = excluded.tolerance`,
		"guild_findByID": `SELECT * FROM guild_config WHERE guild_id = :guildID:`,
	}
	err := proteus.ShouldBuild(ctx, &ChannelConfigDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
	err = proteus.ShouldBuild(ctx, &GuildConfigDAO, proteus.Sqlite, m)
	if err != nil {
		panic(err)
	}
}
