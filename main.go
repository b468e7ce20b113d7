package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"git.lost.host/meutraa/fourk/internal/archive"
	"git.lost.host/meutraa/fourk/internal/audio"
	"git.lost.host/meutraa/fourk/internal/config"
	"git.lost.host/meutraa/fourk/internal/game"
	"git.lost.host/meutraa/fourk/internal/input"
	"git.lost.host/meutraa/fourk/internal/parser"
	"git.lost.host/meutraa/fourk/internal/render"
	"git.lost.host/meutraa/fourk/internal/score"
	"git.lost.host/meutraa/fourk/internal/theme"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	config.Parse()

	logFile, err := os.OpenFile(*config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if nil != err {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	settings, err := config.LoadSettings(*config.SettingsFile)
	if nil != err {
		return err
	}
	if _, err := os.Stat(*config.SettingsFile); os.IsNotExist(err) {
		if err := config.SaveSettings(*config.SettingsFile, settings); nil != err {
			log.Println("unable to write default settings", err)
		}
	}
	if err := settings.Override(*config.KeyString, *config.ScrollSpeed); nil != err {
		return fmt.Errorf("invalid flags: %w", err)
	}

	// Ensure our Default implementations are used as interfaces
	var psr parser.Parser = &parser.DefaultParser{}
	var scorer score.Scorer = &score.DefaultScorer{Path: *config.Database}

	loader := &archive.Loader{Parser: psr, Jobs: *config.Jobs}
	sets, errs := loader.LoadAll(context.Background(), *config.Archives)
	for _, err := range errs {
		log.Println(err)
		fmt.Fprintln(os.Stderr, err)
	}
	for _, s := range sets {
		for name, err := range s.Rejected {
			log.Printf("%v: skipped %v: %v\n", s.Name, name, err)
		}
	}
	es := entries(sets)
	if len(es) == 0 {
		return errors.New("no playable charts found")
	}

	if err := scorer.Init(); nil != err {
		return err
	}
	defer scorer.Deinit()

	reader := &input.DefaultReader{Keys: settings.Keys}
	if err := reader.Open(); nil != err {
		return err
	}
	defer func() {
		if err := reader.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	p := &Program{
		Renderer:    &render.DefaultRenderer{},
		Theme:       &theme.DefaultTheme{Note: settings.Note, Outline: settings.Outline},
		Input:       reader,
		Audio:       &audio.Player{},
		Settings:    settings,
		Offset:      *config.Offset,
		FramePeriod: *config.FramePeriod,
	}

	page := 0
	for {
		listEntries(os.Stdout, es, page)
		ev, ok := <-reader.Events()
		if !ok || ev.Escape || ev.Rune == 'q' {
			return nil
		}
		switch ev.Rune {
		case '+':
			page = (page + 1) % pages(len(es))
			continue
		case '-':
			page = (page + pages(len(es)) - 1) % pages(len(es))
			continue
		}
		index, ok := pick(ev.Rune, page, len(es))
		if !ok {
			continue
		}

		e := es[index]
		od := resolveOD(*config.OD, e.Chart, config.DefaultOD)
		play, err := p.Play(e.Set, e.Chart, od)
		var missing *game.ResourceMissingError
		if errors.As(err, &missing) {
			log.Println(err)
			continue
		} else if nil != err {
			return err
		}
		if nil == play {
			continue
		}

		if err := scorer.Save(e.Chart, play); nil != err {
			log.Println("unable to save score", err)
		}
		history, err := scorer.Load(e.Chart)
		if nil != err {
			log.Println("unable to load score history", err)
		}
		results(os.Stdout, e.Chart, play, history)
		// Drop presses made during the play, then wait for one
		reader.Pending()
		if _, ok := <-reader.Events(); !ok {
			return nil
		}
	}
}

func results(w io.Writer, c *game.Chart, play *score.Play, history []score.History) {
	fmt.Fprintf(w, "\033[H\033[2J%v [%v] od %v\r\n\r\n", c.Title(), c.Version(), play.OD)
	for i := range game.Judgements {
		tier := game.Tier(i)
		fmt.Fprintf(w, "%9v:  %6v\r\n", tier, play.Tally.Count(tier))
	}
	fmt.Fprintf(w, "\r\n   Accuracy:  %6.2f%%\r\n      Score:  %6v\r\n", 100*play.Tally.Accuracy(), play.Tally.Score())

	best := 0.0
	for _, h := range history {
		if h.Accuracy > best {
			best = h.Accuracy
		}
	}
	if len(history) > 0 {
		fmt.Fprintf(w, "       Best:  %6.2f%% over %v plays\r\n", 100*best, len(history))
		// Latest play, rescored from its inputs
		last := history[0]
		replayed := score.Replay(c, last.OD, last.Inputs)
		fmt.Fprintf(w, "   Replayed:  %6.2f%% (%v)\r\n", 100*replayed.Accuracy(), last.PlayedAt.Format(time.Stamp))
	}
	fmt.Fprintf(w, "\r\npress any key\r\n")
}
