package silababot

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/bwmarrin/discordgo"
	"github.com/kalexmills/silabas/src/silabas/db"
	"log"
	"math/rand"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	prefixSplit    = "!silabas"
	prefixBuild    = "!arma"
	prefixAnswer   = "!respuesta"
	prefixProgress = "!progreso"
	prefixAdmin    = "!config"
)

type Config struct {
	Token          string
	ActionFlags    db.ConfigFlag
	Tolerance      float64
	PositiveReacts []string
	NegativeReacts []string
	DBPath         string

	Debug bool
}

func (c Config) String() string {
	return fmt.Sprintf("\tFeatures: %s\n\tTolerance: %.2f\n\tDBPath: %s\n\tDebug: %t\n",
		c.ActionFlags, c.Tolerance, c.DBPath, c.Debug)
}

type SilabaBot struct {
	session *discordgo.Session
	db      *sql.DB

	config Config

	mu           sync.Mutex
	rand         *rand.Rand
	channelCache map[string]*discordgo.Channel
}

func NewSilabaBot(config Config) *SilabaBot {
	log.Printf("Silaba Bot Config:\n%v", config)
	return &SilabaBot{
		config:       config,
		rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
		channelCache: make(map[string]*discordgo.Channel),
	}
}

func (h *SilabaBot) Open() error {
	var err error
	h.db, err = db.Open(h.config.DBPath)
	if err != nil {
		log.Println("error opening database,", err)
		return err
	}

	h.session, err = discordgo.New("Bot " + h.config.Token)
	if err != nil {
		log.Println("error creating Discord session,", err)
		return err
	}

	if h.config.Debug {
		h.session.LogLevel = discordgo.LogDebug
	}

	h.session.AddHandler(h.ReceiveNewMessage)

	h.session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsGuildMessageReactions

	err = h.session.Open()
	if err != nil {
		log.Println("error opening connection,", err)
		return err
	}
	return nil
}

func (h *SilabaBot) Close() error {
	var sessionErr error
	if h.session != nil {
		sessionErr = h.session.Close()
	}
	if h.db != nil {
		if err := h.db.Close(); err != nil {
			log.Println("error closing database,", err)
		}
	}
	return sessionErr
}

func (h *SilabaBot) ReceiveNewMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("recovered from panic on content, %s, panicking on: %v\n%s", oneLine(m.Content), r, debug.Stack())
			panic(r)
		}
	}()
	if m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID == "" { // commands are configured per guild
		return
	}
	command, rest := splitCommand(m.Content)
	switch command {
	case prefixSplit:
		h.HandleSplit(s, m.Message, rest)
	case prefixBuild:
		h.HandleBuild(s, m.Message, rest)
	case prefixAnswer:
		h.HandleAnswer(s, m.Message, rest)
	case prefixProgress:
		h.HandleProgress(s, m.Message)
	case prefixAdmin:
		h.HandleAdminCommand(s, m.Message, rest)
	}
}

// flags returns the features enabled for the channel a message was sent to.
func (h *SilabaBot) flags(ctx context.Context, m *discordgo.Message) db.ConfigFlag {
	gid, cid, err := messageIDs(m)
	if err != nil {
		log.Println("could not parse message IDs,", err)
		return h.config.ActionFlags
	}
	flags, err := db.LookupFlags(ctx, h.db, gid, cid)
	if err != nil {
		log.Println("could not look up feature flags,", err)
		return h.config.ActionFlags
	}
	return effectiveFlags(flags, h.config.ActionFlags)
}

func effectiveFlags(stored, defaults db.ConfigFlag) db.ConfigFlag {
	if stored.Explicit() {
		return stored
	}
	return defaults
}

func (h *SilabaBot) reply(s *discordgo.Session, m *discordgo.Message, content string) {
	_, err := s.ChannelMessageSendReply(m.ChannelID, content, reference(m))
	if err != nil {
		log.Println("could not send reply,", err)
	}
}

func (h *SilabaBot) react(s *discordgo.Session, m *discordgo.Message, reactions []string) {
	if len(reactions) == 0 {
		return
	}
	h.mu.Lock()
	reaction := reactions[h.rand.Intn(len(reactions))]
	h.mu.Unlock()
	err := s.MessageReactionAdd(m.ChannelID, m.ID, reaction)
	if err != nil {
		log.Println("could not add emoji reaction,", err)
	}
}

func (h *SilabaBot) lookupChannel(s *discordgo.Session, channelID string) (*discordgo.Channel, error) {
	h.mu.Lock()
	c, ok := h.channelCache[channelID]
	h.mu.Unlock()
	if ok {
		return c, nil
	}
	c, err := s.Channel(channelID)
	if err != nil {
		return nil, err
	}
	if h.config.Debug {
		log.Println("looked up channel", channelID)
	}
	h.mu.Lock()
	h.channelCache[channelID] = c
	h.mu.Unlock()
	return c, nil
}

func reference(m *discordgo.Message) *discordgo.MessageReference {
	return &discordgo.MessageReference{MessageID: m.ID, ChannelID: m.ChannelID, GuildID: m.GuildID}
}

func messageIDs(m *discordgo.Message) (guildID int, channelID int, err error) {
	guildID, err = strconv.Atoi(m.GuildID)
	if err != nil {
		return 0, 0, fmt.Errorf("guild ID %s: %w", m.GuildID, err)
	}
	channelID, err = strconv.Atoi(m.ChannelID)
	if err != nil {
		return 0, 0, fmt.Errorf("channel ID %s: %w", m.ChannelID, err)
	}
	return guildID, channelID, nil
}

// splitCommand separates the leading command word of content from its arguments.
func splitCommand(content string) (string, string) {
	trimmed := strings.TrimSpace(content)
	idx := strings.IndexAny(trimmed, " \t\n")
	if idx < 0 {
		return strings.ToLower(trimmed), ""
	}
	return strings.ToLower(trimmed[:idx]), strings.TrimSpace(trimmed[idx+1:])
}

func oneLine(str string) string {
	return strings.ReplaceAll(str, "\n", "\\n")
}
