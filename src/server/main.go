package main

import (
	"github.com/kalexmills/silabas/src/silababot"
	"github.com/kalexmills/silabas/src/silabas"
	"github.com/kalexmills/silabas/src/silabas/db"
	"github.com/spf13/viper"
	"log"

	"os"
	"os/signal"
	"syscall"
)

func main() {
	conf := readConfig()
	if conf.Token == "" {
		log.Fatalf("no bot token configured; set SILABAS_TOKEN or token in the config file")
	}
	bot := silababot.NewSilabaBot(conf)

	err := bot.Open()
	if err != nil {
		log.Fatalf("fail error opening bot: %v", err)
	}

	log.Println("Bot is now running.  Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Cleanly close down the Discord session and database.
	err = bot.Close()
	if err != nil {
		log.Println("error closing session,", err)
	}
}

func readConfig() silababot.Config {
	viper.SetDefault("splitWords", true)
	viper.SetDefault("underlineVowels", true)
	viper.SetDefault("buildPuzzle", true)
	viper.SetDefault("revealAnswer", false)
	viper.SetDefault("trackProgress", true)
	viper.SetDefault("tolerance", silabas.DefaultTolerance)
	viper.SetDefault("positiveReacts", []string{"✅", "🎉", "⭐"})
	viper.SetDefault("negativeReacts", []string{"❌", "🔁"})
	viper.SetDefault("dbPath", "./silabasDB.sqlite3")
	viper.SetDefault("debug", false)

	viper.SetEnvPrefix("SILABAS")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.AddConfigPath("/etc/silabas")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		log.Println("no config file found, using defaults,", err)
	}
	flags := db.ConfigFlag(0)
	if viper.GetBool("splitWords") {
		flags |= db.ConfigSplitWords
	}
	if viper.GetBool("underlineVowels") {
		flags |= db.ConfigUnderlineVowels
	}
	if viper.GetBool("buildPuzzle") {
		flags |= db.ConfigBuildPuzzle
	}
	if viper.GetBool("revealAnswer") {
		flags |= db.ConfigRevealAnswer
	}
	if viper.GetBool("trackProgress") {
		flags |= db.ConfigTrackProgress
	}
	return silababot.Config{
		Token:          viper.GetString("token"),
		ActionFlags:    flags,
		Tolerance:      silabas.ClampTolerance(viper.GetFloat64("tolerance")),
		PositiveReacts: viper.GetStringSlice("positiveReacts"),
		NegativeReacts: viper.GetStringSlice("negativeReacts"),
		Debug:          viper.GetBool("debug"),
		DBPath:         viper.GetString("dbPath"),
	}
}
