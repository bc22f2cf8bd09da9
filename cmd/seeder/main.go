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

// Seeder fills a database with sample records for manual testing of
// search and the companion.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/poiesic/materna"
	"github.com/poiesic/materna/core"
)

type journalSeed struct {
	title   string
	content string
	mood    core.Mood
	daysAgo int
}

var journalSeeds = []journalSeed{
	{"Primeiro chute", "Senti o bebê mexer pela primeira vez hoje! Não consegui parar de sorrir.", core.MoodHappy, 40},
	{"", "Hoje chorei muito, foi um dia pesado no trabalho e o cansaço venceu.", core.MoodSad, 32},
	{"Chá de bebê", "A família toda reunida, quanto carinho. Sou muito grata por todos.", core.MoodGrateful, 25},
	{"", "Acordei com o coração acelerado pensando no parto. Respirei fundo e passou.", core.MoodAnxious, 18},
	{"Tarde no parque", "Caminhada leve, sol, e uma paz que eu não sentia há semanas.", core.MoodCalm, 12},
	{"", "Noite mal dormida, azia, e a sensação de que não dou conta de tudo.", core.MoodOverwhelmed, 7},
	{"Quarto pronto", "Montamos o berço! Cada detalhe me enche de esperança.", core.MoodHopeful, 3},
	{"", "Fiquei horas olhando as roupinhas dobradas. Quanto amor cabe num gaveteiro.", core.MoodLoving, 1},
}

func main() {
	dbPath := flag.String("db", "materna-db", "path to the database directory")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	logger := slog.Default().With("component", "seeder")

	app, err := materna.NewApp(*dbPath)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer app.Close()

	ctx := context.Background()
	now := time.Now().UTC()
	repos := app.Repositories()

	for _, seed := range journalSeeds {
		entry := &core.JournalEntry{
			Title:     seed.title,
			Content:   seed.content,
			Mood:      seed.mood,
			CreatedAt: now.AddDate(0, 0, -seed.daysAgo),
		}
		if _, err := repos.Journal.Add(ctx, entry); err != nil {
			logger.Error("failed to seed journal entry", "err", err)
			os.Exit(1)
		}
	}

	documents := []*core.Document{
		{Title: "Certidão de nascimento", Type: core.DocumentCertificate,
			Notes: "Guardada na gaveta azul do escritório.", CreatedAt: now.AddDate(0, 0, -60)},
		{Title: "Carteira de vacinação", Type: core.DocumentVaccineCard,
			Tags: "vacina, bebê", CreatedAt: now.AddDate(0, 0, -45)},
		{Title: "Exame de sangue do 2º trimestre", Type: core.DocumentExamResult,
			Notes: "Resultados dentro do esperado.", CreatedAt: now.AddDate(0, 0, -20)},
	}
	if _, err := repos.Documents.Add(ctx, documents...); err != nil {
		logger.Error("failed to seed documents", "err", err)
		os.Exit(1)
	}

	medical := []*core.MedicalRecord{
		{Title: "Consulta pré-natal", Description: "Pressão e peso normais.",
			Type: core.MedicalAppointment, Date: now.AddDate(0, 0, -30)},
		{Title: "Ultrassom morfológico", Description: "Tudo bem com o bebê!",
			Type: core.MedicalUltrasound, Date: now.AddDate(0, 0, -15)},
		{Title: "Consulta pré-natal", Description: "Próxima revisão de rotina.",
			Type: core.MedicalAppointment, Date: now.AddDate(0, 0, 10)},
	}
	if _, err := repos.Medical.Add(ctx, medical...); err != nil {
		logger.Error("failed to seed medical records", "err", err)
		os.Exit(1)
	}

	milestones := []*core.MilestoneRecord{
		{Title: "Primeiro sorriso da Alice", Description: "Sorriu durante o banho!",
			Type: core.MilestoneFirstSmile, Date: now.AddDate(0, 0, -10)},
	}
	if _, err := repos.Milestones.Add(ctx, milestones...); err != nil {
		logger.Error("failed to seed milestones", "err", err)
		os.Exit(1)
	}

	weight1, height1 := 3.4, 50.0
	weight2 := 5.2
	growth := []*core.GrowthRecord{
		{WeightKg: &weight1, HeightCm: &height1, AgeInMonths: 0, Date: now.AddDate(0, 0, -90)},
		{WeightKg: &weight2, AgeInMonths: 3, Date: now.AddDate(0, 0, -5)},
	}
	if _, err := repos.Growth.Add(ctx, growth...); err != nil {
		logger.Error("failed to seed growth records", "err", err)
		os.Exit(1)
	}

	profile := &core.Profile{
		Name:          "Ana",
		BabyName:      "Alice",
		CompanionName: "Lua",
		DueDate:       now.AddDate(0, 2, 0),
	}
	if err := repos.Profile.SaveProfile(ctx, profile); err != nil {
		logger.Error("failed to seed profile", "err", err)
		os.Exit(1)
	}

	logger.Info("seeding complete", "journal", len(journalSeeds),
		"documents", len(documents), "medical", len(medical),
		"milestones", len(milestones), "growth", len(growth))
}
