package silababot

import (
	"context"
	"errors"
	"github.com/bwmarrin/discordgo"
	"github.com/kalexmills/silabas/src/dict"
	"github.com/kalexmills/silabas/src/silabas"
	"github.com/kalexmills/silabas/src/silabas/db"
	"log"
	"math/rand"
	"strconv"
	"strings"
)

var errNoBuildableWord = errors.New("no hay palabras de varias sílabas para armar")

func (h *SilabaBot) HandleSplit(s *discordgo.Session, m *discordgo.Message, text string) {
	flags := h.flags(context.Background(), m)
	if !flags.SplitWords() {
		return
	}
	if text == "" {
		h.reply(s, m, "Escribe una palabra después de `"+prefixSplit+"`.")
		return
	}
	h.reply(s, m, formatText(text, flags.UnderlineVowels()))
}

func (h *SilabaBot) HandleBuild(s *discordgo.Session, m *discordgo.Message, arg string) {
	ctx := context.Background()
	if !h.flags(ctx, m).BuildPuzzle() {
		return
	}
	h.mu.Lock()
	round, err := pickRound(arg, h.rand)
	h.mu.Unlock()
	if err != nil {
		h.reply(s, m, err.Error())
		return
	}
	_, cid, err := messageIDs(m)
	if err != nil {
		log.Println("could not parse message IDs,", err)
		return
	}
	uid, err := strconv.Atoi(m.Author.ID)
	if err != nil {
		log.Println("could not parse author ID as integer,", m.Author.ID)
		return
	}
	_, err = db.PuzzleDAO.Upsert(ctx, h.db, db.Puzzle{
		ChannelID: cid,
		UserID:    uid,
		Target:    round.Target,
		Pieces:    strings.Join(round.Syllables, " "),
	})
	if err != nil {
		log.Println("could not store puzzle,", err)
		return
	}
	if h.config.Debug {
		log.Printf("started puzzle %s for user %s in channel %s", round.Target, m.Author.ID, m.ChannelID)
	}
	h.reply(s, m, formatRound(round))
}

// pickRound builds a round from arg, which may name a lesson, a word, or nothing at all.
func pickRound(arg string, r *rand.Rand) (silabas.BuildRound, error) {
	var candidates []string
	if arg == "" {
		for _, l := range dict.Lessons() {
			candidates = append(candidates, l.Buildable()...)
		}
	} else if lesson, ok := dict.FindLesson(arg); ok {
		candidates = lesson.Buildable()
	} else {
		word := silabas.SplitWords(arg)[0]
		round, ok := silabas.NewBuildRound(trimPunctuation(word), r)
		if !ok {
			return silabas.BuildRound{}, errors.New("«" + word + "» tiene una sola sílaba; elige otra palabra")
		}
		return round, nil
	}
	if len(candidates) == 0 {
		return silabas.BuildRound{}, errNoBuildableWord
	}
	round, _ := silabas.NewBuildRound(candidates[r.Intn(len(candidates))], r)
	return round, nil
}

func (h *SilabaBot) HandleAnswer(s *discordgo.Session, m *discordgo.Message, answer string) {
	ctx := context.Background()
	flags := h.flags(ctx, m)
	gid, cid, err := messageIDs(m)
	if err != nil {
		log.Println("could not parse message IDs,", err)
		return
	}
	uid, err := strconv.Atoi(m.Author.ID)
	if err != nil {
		log.Println("could not parse author ID as integer,", m.Author.ID)
		return
	}
	puzzle, err := db.PuzzleDAO.Find(ctx, h.db, cid, uid)
	if err != nil {
		log.Println("could not read puzzle from database,", err)
		return
	}
	if puzzle.Target == "" {
		h.reply(s, m, "No tienes ninguna palabra pendiente. Empieza con `"+prefixBuild+"`.")
		return
	}

	guildConf, err := db.GuildConfigDAO.FindByID(ctx, h.db, gid)
	if err != nil {
		log.Println("could not read guild config from database,", err)
	}
	tolerance := h.config.Tolerance
	if guildConf.Tolerance != 0 {
		tolerance = guildConf.Tolerance
	}

	ok := checkAnswer(answer, puzzle.Target, tolerance)
	if flags.TrackProgress() {
		if err := db.RecordAttempt(ctx, h.db, gid, uid, ok); err != nil {
			log.Println("could not record attempt,", err)
		}
	}
	if ok {
		h.react(s, m, h.config.PositiveReacts)
		h.clearPuzzle(ctx, cid, uid)
		return
	}
	h.react(s, m, h.config.NegativeReacts)
	if flags.RevealAnswer() {
		h.reply(s, m, formatAnswer(puzzle.Target))
		h.clearPuzzle(ctx, cid, uid)
	}
}

func (h *SilabaBot) clearPuzzle(ctx context.Context, channelID, userID int) {
	if _, err := db.PuzzleDAO.Delete(ctx, h.db, channelID, userID); err != nil {
		log.Println("could not delete puzzle,", err)
	}
}

// checkAnswer joins the syllables the user sent back into one word before scoring it.
func checkAnswer(answer, target string, tolerance float64) bool {
	built := strings.Join(silabas.SplitWords(answer), "")
	return silabas.Accept(built, target, tolerance)
}

func (h *SilabaBot) HandleProgress(s *discordgo.Session, m *discordgo.Message) {
	ctx := context.Background()
	if !h.flags(ctx, m).TrackProgress() {
		return
	}
	gid, err := strconv.Atoi(m.GuildID)
	if err != nil {
		log.Println("could not parse guildID as integer,", m.GuildID)
		return
	}
	uid, err := strconv.Atoi(m.Author.ID)
	if err != nil {
		log.Println("could not parse author ID as integer,", m.Author.ID)
		return
	}
	p, err := db.ProgressDAO.FindByID(ctx, h.db, gid, uid)
	if err != nil {
		log.Println("could not read progress from database,", err)
		return
	}
	h.reply(s, m, formatProgress(p))
}
