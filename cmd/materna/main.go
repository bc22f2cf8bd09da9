// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/materna"
	"github.com/poiesic/materna/ai"
	"github.com/poiesic/materna/core"
	"github.com/poiesic/materna/gestation"
	"github.com/poiesic/materna/importer"
)

func main() {
	app := &cli.App{
		Name:  "materna",
		Usage: "Maternity journal with search and a supportive companion",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the database directory",
				Value:   defaultDBPath(),
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:  "journal",
				Usage: "Manage journal entries",
				Subcommands: []*cli.Command{
					{
						Name:   "add",
						Usage:  "Add a journal entry and hear from the companion",
						Action: journalAddCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "title",
								Usage: "Optional entry title",
							},
							&cli.StringFlag{
								Name:     "content",
								Aliases:  []string{"c"},
								Usage:    "Entry text",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "mood",
								Aliases:  []string{"m"},
								Usage:    fmt.Sprintf("Mood code (%s)", strings.Join(moodCodes(), ", ")),
								Required: true,
							},
						},
					},
					{
						Name:   "list",
						Usage:  "List recent journal entries",
						Action: journalListCommand,
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Usage: "Maximum entries to show",
								Value: 10,
							},
						},
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search across every record family",
				ArgsUsage: "<query>",
				Action:    searchCommand,
			},
			{
				Name:   "reply",
				Usage:  "Hear from the companion without saving an entry",
				Action: replyCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "content",
						Aliases:  []string{"c"},
						Usage:    "What's on your mind",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "mood",
						Aliases:  []string{"m"},
						Usage:    fmt.Sprintf("Mood code (%s)", strings.Join(moodCodes(), ", ")),
						Required: true,
					},
				},
			},
			{
				Name:   "duedate",
				Usage:  "Estimate the due date",
				Action: dueDateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "date",
						Usage:    "Reference date (YYYY-MM-DD)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "method",
						Usage: "Calculation method (lmp, conception, ultrasound)",
						Value: "lmp",
					},
				},
			},
			{
				Name:      "import",
				Usage:     "Import a JSON snapshot",
				ArgsUsage: "<snapshot.json>",
				Action:    importCommand,
			},
			{
				Name:  "profile",
				Usage: "Manage the user profile",
				Subcommands: []*cli.Command{
					{
						Name:   "set",
						Usage:  "Set profile fields",
						Action: profileSetCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "name", Usage: "Your name"},
							&cli.StringFlag{Name: "baby-name", Usage: "Baby's name"},
							&cli.StringFlag{Name: "companion-name", Usage: "Companion's name"},
							&cli.StringFlag{Name: "due-date", Usage: "Due date (YYYY-MM-DD)"},
							&cli.StringFlag{Name: "last-period", Usage: "First day of last period (YYYY-MM-DD)"},
						},
					},
					{
						Name:   "show",
						Usage:  "Show the stored profile",
						Action: profileShowCommand,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "materna-db"
	}
	return home + "/.materna/db"
}

func moodCodes() []string {
	codes := make([]string, 0, len(core.Moods))
	for _, mood := range core.Moods {
		codes = append(codes, mood.Code())
	}
	return codes
}

func openApp(c *cli.Context) (*materna.App, error) {
	var opts []materna.AppOption
	if key := os.Getenv("MATERNA_AI_KEY"); key != "" {
		config := ai.NewConfig(ai.WithAPIKey(key))
		if host := os.Getenv("MATERNA_AI_HOST"); host != "" {
			ai.WithHost(host)(config)
		}
		if model := os.Getenv("MATERNA_AI_MODEL"); model != "" {
			ai.WithModel(model)(config)
		}
		opts = append(opts, materna.WithAIConfig(config))
	}
	return materna.NewApp(c.String("db"), opts...)
}

func journalAddCommand(c *cli.Context) error {
	ctx := context.Background()

	mood, err := core.ParseMood(c.String("mood"))
	if err != nil {
		return err
	}
	entry := &core.JournalEntry{
		Title:     c.String("title"),
		Content:   c.String("content"),
		Mood:      mood,
		CreatedAt: time.Now().UTC(),
	}
	if err := core.ValidateJournalEntry(entry); err != nil {
		return err
	}

	app, err := openApp(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer app.Close()

	added, err := app.Repositories().Journal.Add(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to store entry: %w", err)
	}

	reply := app.Reply(ctx, added[0])
	fmt.Printf("Registrado %s %s\n\n%s\n", mood.Emoji(), mood.Label(), reply.Text)
	return nil
}

func journalListCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer app.Close()

	entries, err := app.Repositories().Journal.Recent(context.Background(), c.Int("limit"))
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("Nenhum registro ainda. Que tal escrever o primeiro?")
		return nil
	}

	for _, entry := range entries {
		title := entry.Title
		if title == "" {
			title = "(sem título)"
		}
		fmt.Printf("%s  %s %s\n    %s\n", entry.CreatedAt.Format("02/01/2006"),
			entry.Mood.Emoji(), title, entry.Content)
	}
	return nil
}

func replyCommand(c *cli.Context) error {
	mood, err := core.ParseMood(c.String("mood"))
	if err != nil {
		return err
	}

	app, err := openApp(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer app.Close()

	reply := app.Reply(context.Background(), &core.JournalEntry{
		Content: c.String("content"),
		Mood:    mood,
	})
	fmt.Println(reply.Text)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")

	app, err := openApp(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer app.Close()

	response, err := app.Search(context.Background(), query)
	if err != nil {
		return err
	}

	fmt.Println(response.Message)
	for _, result := range response.Results {
		fmt.Printf("\n%s\n    %s\n    %s\n", result.Title,
			result.Summary, result.When.Format("02/01/2006"))
	}
	return nil
}

var dueDateMethods = map[string]gestation.Method{
	"lmp":        gestation.MethodLastPeriod,
	"conception": gestation.MethodConception,
	"ultrasound": gestation.MethodUltrasound,
}

func dueDateCommand(c *cli.Context) error {
	method, ok := dueDateMethods[c.String("method")]
	if !ok {
		return fmt.Errorf("unknown method %q: use lmp, conception, or ultrasound", c.String("method"))
	}
	reference, err := time.Parse("2006-01-02", c.String("date"))
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}

	dueDate, err := gestation.DueDate(reference, method)
	if err != nil {
		return err
	}
	progress := gestation.ProgressAt(dueDate, time.Now())

	fmt.Printf("Data provável do parto: %s\n", dueDate.Format("02/01/2006"))
	if progress.DaysRemaining >= 0 {
		fmt.Printf("Semana %d, dia %d (%d dias restantes)\n",
			progress.Week, progress.Day, progress.DaysRemaining)
	}
	return nil
}

func importCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: materna import <snapshot.json>")
	}

	file, err := os.Open(c.Args().First())
	if err != nil {
		return err
	}
	defer file.Close()

	app, err := openApp(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer app.Close()

	imp, err := app.NewImporter()
	if err != nil {
		return err
	}
	defer imp.Release()

	snapshot, err := importer.ReadSnapshot(file)
	if err != nil {
		return err
	}
	report, err := imp.Import(context.Background(), snapshot)
	if err != nil {
		return err
	}
	fmt.Printf("Importados: %d, ignorados (duplicados): %d\n", report.Imported, report.Skipped)
	return nil
}

func profileSetCommand(c *cli.Context) error {
	ctx := context.Background()

	app, err := openApp(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer app.Close()

	store := app.Repositories().Profile
	profile, err := store.GetProfile(ctx)
	if err != nil {
		profile = &core.Profile{}
	}

	if name := c.String("name"); name != "" {
		profile.Name = name
	}
	if babyName := c.String("baby-name"); babyName != "" {
		profile.BabyName = babyName
	}
	if companionName := c.String("companion-name"); companionName != "" {
		profile.CompanionName = companionName
	}
	if raw := c.String("due-date"); raw != "" {
		dueDate, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fmt.Errorf("invalid due date: %w", err)
		}
		profile.DueDate = dueDate
	}
	if raw := c.String("last-period"); raw != "" {
		lastPeriod, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fmt.Errorf("invalid last period date: %w", err)
		}
		profile.LastPeriod = lastPeriod
		// Derive the due date when one was not given explicitly.
		if !profile.HasDueDate() {
			profile.DueDate, _ = gestation.DueDate(lastPeriod, gestation.MethodLastPeriod)
		}
	}

	if err := store.SaveProfile(ctx, profile); err != nil {
		return err
	}
	fmt.Println("Perfil atualizado.")
	return nil
}

func profileShowCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer app.Close()

	profile, err := app.Repositories().Profile.GetProfile(context.Background())
	if err != nil {
		fmt.Println("Nenhum perfil cadastrado ainda.")
		return nil
	}

	fmt.Printf("Nome: %s\n", profile.Name)
	if profile.BabyName != "" {
		fmt.Printf("Bebê: %s\n", profile.BabyName)
	}
	if profile.CompanionName != "" {
		fmt.Printf("Companheira virtual: %s\n", profile.CompanionName)
	}
	if profile.HasDueDate() {
		progress := gestation.ProgressAt(profile.DueDate, time.Now())
		fmt.Printf("Data provável do parto: %s (semana %d)\n",
			profile.DueDate.Format("02/01/2006"), progress.Week)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", levelStr)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}
