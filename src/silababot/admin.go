package silababot

import (
	"context"
	"errors"
	"fmt"
	"github.com/bwmarrin/discordgo"
	"github.com/kalexmills/silabas/src/silabas"
	"github.com/kalexmills/silabas/src/silabas/db"
	"log"
	"strconv"
	"strings"
)

// adminCommandPerms is a bitmask for the min permissions required to send admin commands. If any flag is set, the
// user can send admin commands.
const adminCommandPerms = discordgo.PermissionAdministrator | discordgo.PermissionManageChannels | discordgo.PermissionManageServer

const targetGlobal = "global"

func (h *SilabaBot) HandleAdminCommand(s *discordgo.Session, m *discordgo.Message, commandRaw string) {
	perms, err := h.Permissions(s, m)
	if err != nil {
		log.Println("could not retrieve permissions for user, ignoring admin command,", err)
		return
	}
	if perms&adminCommandPerms == 0 {
		if h.config.Debug {
			log.Printf("could not verify admin permissions, found perms %d, expected %d", perms, adminCommandPerms)
		}
		h.reply(s, m, "No tienes permisos para configurar el bot en este servidor.")
		return
	}
	command, err := parseCommand(commandRaw)
	if err != nil {
		h.reply(s, m, err.Error())
		return
	}
	if command.Target != "" && command.Target != targetGlobal {
		c, err := h.lookupChannel(s, command.Target)
		if err != nil || c.GuildID != m.GuildID {
			h.reply(s, m, fmt.Sprintf("El canal %s no pertenece a este servidor.", command.MentionTarget()))
			return
		}
	}

	ctx := context.Background()
	switch command.Operation {
	case OpFeatureOn:
		if err := h.updateFeatures(ctx, m, command, EnableFeatures); err != nil {
			log.Println("could not enable features,", err)
			return
		}
		h.reply(s, m, fmt.Sprintf("Enabled features %s for target %s", command.Features, command.MentionTarget()))
	case OpFeatureOff:
		if err := h.updateFeatures(ctx, m, command, DisableFeatures); err != nil {
			log.Println("could not disable features,", err)
			return
		}
		h.reply(s, m, fmt.Sprintf("Disabled features %s for target %s", command.Features, command.MentionTarget()))
	case OpFeatureList:
		flags, err := h.storedFlags(ctx, m, command)
		if err != nil {
			log.Println("could not read feature flags,", err)
			return
		}
		h.reply(s, m, fmt.Sprintf("Features enabled for target %s: %s", command.MentionTarget(), flags))
	case OpTolerance:
		if err := h.updateTolerance(ctx, m, command.Tolerance); err != nil {
			log.Println("could not update tolerance,", err)
			return
		}
		h.reply(s, m, fmt.Sprintf("Tolerance set to %.2f", command.Tolerance))
	case OpHelp:
		h.reply(s, m, AdminHelp)
	}
}

func (h *SilabaBot) Permissions(s *discordgo.Session, m *discordgo.Message) (int64, error) {
	g, err := s.Guild(m.GuildID)
	if err != nil {
		return 0, err
	}
	if g.OwnerID == m.Author.ID {
		return discordgo.PermissionAll, nil
	}
	member, err := s.GuildMember(m.GuildID, m.Author.ID)
	if err != nil {
		return 0, err
	}
	roles, err := s.GuildRoles(m.GuildID)
	if err != nil {
		return 0, err
	}
	return memberPermissions(m.GuildID, roles, member.Roles), nil
}

// memberPermissions ORs the permissions of @everyone (whose role ID is the guild ID) with those of every
// role the member holds.
func memberPermissions(guildID string, roles []*discordgo.Role, memberRoles []string) int64 {
	roleMap := make(map[string]int64)
	for _, role := range roles {
		roleMap[role.ID] = role.Permissions
	}
	permissions := roleMap[guildID]
	for _, role := range memberRoles {
		permissions |= roleMap[role]
	}
	if permissions&discordgo.PermissionAdministrator == discordgo.PermissionAdministrator {
		return discordgo.PermissionAll
	}
	return permissions
}

func (h *SilabaBot) storedFlags(ctx context.Context, m *discordgo.Message, command Command) (db.ConfigFlag, error) {
	if command.Target == targetGlobal {
		gid, err := strconv.Atoi(m.GuildID)
		if err != nil {
			return 0, fmt.Errorf("could not parse guildID %s: %w", m.GuildID, err)
		}
		conf, err := db.GuildConfigDAO.FindByID(ctx, h.db, gid)
		if err != nil {
			return 0, err
		}
		return effectiveFlags(conf.Flags, h.config.ActionFlags), nil
	}
	cid, err := strconv.Atoi(command.Target)
	if err != nil {
		return 0, fmt.Errorf("could not parse channelID %s: %w", command.Target, err)
	}
	conf, err := db.ChannelConfigDAO.FindByID(ctx, h.db, cid)
	if err != nil {
		return 0, err
	}
	return conf.Flags, nil
}

type featureMutator func(db.ConfigFlag, db.ConfigFlag) db.ConfigFlag

func EnableFeatures(current db.ConfigFlag, feats db.ConfigFlag) db.ConfigFlag {
	return current.Or(feats).Or(db.ConfigExplicit)
}

func DisableFeatures(current db.ConfigFlag, feats db.ConfigFlag) db.ConfigFlag {
	return current.And(^feats).Or(db.ConfigExplicit) // and with bitwise not
}

func (h *SilabaBot) updateFeatures(ctx context.Context, m *discordgo.Message, command Command, mutator featureMutator) error {
	gid, err := strconv.Atoi(m.GuildID)
	if err != nil {
		return fmt.Errorf("could not parse guildID %s: %w", m.GuildID, err)
	}
	currConfig, err := db.GuildConfigDAO.FindByID(ctx, h.db, gid) // read
	if err != nil {
		return err
	}
	currConfig.GuildID = gid

	if command.Target == targetGlobal {
		// start from the defaults the guild was running with
		currConfig.Flags = mutator(effectiveFlags(currConfig.Flags, h.config.ActionFlags), command.Features)
		_, err = db.GuildConfigDAO.Upsert(ctx, h.db, currConfig) // write
		return err
	}

	if !currConfig.Flags.Explicit() {
		// channel flags are ORed with the guild's; pin the defaults so other channels keep them
		currConfig.Flags = h.config.ActionFlags.Or(db.ConfigExplicit)
		if _, err = db.GuildConfigDAO.Upsert(ctx, h.db, currConfig); err != nil {
			return err
		}
	}
	cid, err := strconv.Atoi(command.Target)
	if err != nil {
		return fmt.Errorf("could not parse channelID %s: %w", command.Target, err)
	}
	chanConfig, err := db.ChannelConfigDAO.FindByID(ctx, h.db, cid) // read
	if err != nil {
		return err
	}
	_, err = db.ChannelConfigDAO.Upsert(ctx, h.db, cid, int64(mutator(chanConfig.Flags, command.Features))) // write
	return err
}

func (h *SilabaBot) updateTolerance(ctx context.Context, m *discordgo.Message, tolerance float64) error {
	gid, err := strconv.Atoi(m.GuildID)
	if err != nil {
		return fmt.Errorf("could not parse guildID %s: %w", m.GuildID, err)
	}
	currConfig, err := db.GuildConfigDAO.FindByID(ctx, h.db, gid)
	if err != nil {
		return err
	}
	currConfig.GuildID = gid
	currConfig.Tolerance = tolerance
	_, err = db.GuildConfigDAO.Upsert(ctx, h.db, currConfig)
	return err
}

type Operation uint8

const (
	OpFeatureOn Operation = iota
	OpFeatureOff
	OpFeatureList
	OpTolerance
	OpHelp
)

type Command struct {
	Operation Operation
	Target    string
	Features  db.ConfigFlag
	Tolerance float64
}

func (c Command) MentionTarget() string {
	if c.Target == targetGlobal {
		return targetGlobal
	}
	return fmt.Sprintf("<#%s>", c.Target)
}

const helpHint = "; send `" + prefixAdmin + " help` for help"

func parseCommand(content string) (Command, error) {
	tokens := strings.Fields(content)
	if len(tokens) < 1 {
		return Command{}, errors.New("expected a valid command after `" + prefixAdmin + "`" + helpHint)
	}
	command := tokens[0]
	if command == "feature" && len(tokens) > 1 {
		command += " " + tokens[1]
	}
	result := Command{}
	switch command {
	case "feature on":
		result.Operation = OpFeatureOn
		if len(tokens) < 4 {
			return Command{}, errors.New("expected a target and list of features after `feature on`" + helpHint)
		}
	case "feature off":
		result.Operation = OpFeatureOff
		if len(tokens) < 4 {
			return Command{}, errors.New("expected a target and list of features after `feature off`" + helpHint)
		}
	case "feature list":
		result.Operation = OpFeatureList
		if len(tokens) < 3 {
			return Command{}, errors.New("expected a target after `feature list`" + helpHint)
		}
	case "tolerance":
		if len(tokens) != 2 {
			return Command{}, errors.New("expected a number between 0.3 and 1.0 after `tolerance`" + helpHint)
		}
		t, err := strconv.ParseFloat(tokens[1], 64)
		if err != nil || t <= 0 {
			return Command{}, fmt.Errorf("couldn't parse tolerance '%s' as a positive number", tokens[1])
		}
		result.Operation = OpTolerance
		result.Tolerance = silabas.ClampTolerance(t)
		return result, nil
	case "help":
		result.Operation = OpHelp
		return result, nil
	default:
		return Command{}, fmt.Errorf("could not understand command %s", command)
	}

	target, err := parseTarget(tokens[2])
	if err != nil {
		return Command{}, err
	}
	result.Target = target

	result.Features, err = parseFeatures(tokens[3:])
	if err != nil {
		return Command{}, err
	}
	return result, nil
}

// parseTarget accepts "global" or a channel mention, returning the bare channel ID for the latter.
func parseTarget(target string) (string, error) {
	if target == targetGlobal {
		return target, nil
	}
	if !strings.HasPrefix(target, "<#") || !strings.HasSuffix(target, ">") {
		return "", fmt.Errorf("couldn't parse target '%s' as valid target", target)
	}
	id, err := strconv.Atoi(target[2 : len(target)-1])
	if err != nil {
		return "", fmt.Errorf("couldn't parse target '%s' as valid channel mention", target)
	}
	return strconv.Itoa(id), nil
}

func parseFeatures(features []string) (db.ConfigFlag, error) {
	var result db.ConfigFlag
outer:
	for _, feature := range features {
		for _, f := range db.Features {
			if strings.EqualFold(feature, f.Name) {
				result |= f.Flag
				continue outer
			}
		}
		return 0, fmt.Errorf("could not understand '%s' as a valid feature%s", feature, helpHint)
	}
	return result, nil
}

var AdminHelp = `All commands must be sent in the guild they are meant to apply to.
  ~~~!config feature on [target] [feature feature...]~~~
  ~~~!config feature off [target] [feature feature...]~~~
  ~~~!config feature list [target]~~~
  ~~~!config tolerance [0.3-1.0]~~~

~~~[target]~~~ can be either a channel mention or ~~~global~~~ to enable features for every channel in the guild.
Channel features are added to the global ones.
~~~[feature feature...]~~~ is a space-separated list of features from the below list.

   - ~~~SplitWords~~~ - answers ~~~!silabas~~~ with the syllables of each word
   - ~~~UnderlineVowels~~~ - underlines syllables which begin with a vowel
   - ~~~BuildPuzzle~~~ - enables ~~~!arma~~~ build-a-word puzzles
   - ~~~RevealAnswer~~~ - shows the word after a wrong answer instead of allowing another try
   - ~~~TrackProgress~~~ - records puzzle attempts and enables ~~~!progreso~~~

~~~tolerance~~~ is the share of the word that must match for an answer to count; defaults to 0.6.
`

func init() {
	AdminHelp = strings.ReplaceAll(AdminHelp, "~~~", "`")
}
