package question

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"

	"quizmaster/internal/config"
)

type seedQuestion struct {
	category   string
	difficulty string
	question   string
	correct    string
	incorrect  []string
}

var seedQuestions = []seedQuestion{
	{"technology", "easy", "What does HTML stand for?", "Hyper Text Markup Language",
		[]string{"High Tech Modern Language", "Hyper Transfer Markup Language", "Home Tool Markup Language"}},
	{"technology", "easy", "Which language runs in a web browser?", "JavaScript",
		[]string{"Java", "C", "Python"}},
	{"technology", "easy", "What does CSS stand for?", "Cascading Style Sheets",
		[]string{"Creative Style Sheets", "Computer Style Sheets", "Colorful Style Sheets"}},
	{"technology", "easy", "Which company developed JavaScript?", "Netscape",
		[]string{"Microsoft", "Apple", "Google"}},
	{"technology", "easy", "What year was JavaScript launched?", "1995",
		[]string{"1996", "1994", "None of the above"}},
	{"technology", "medium", "Which of these is a JavaScript framework?", "React",
		[]string{"Django", "Laravel", "Spring"}},
	{"technology", "medium", "What does API stand for?", "Application Programming Interface",
		[]string{"Advanced Programming Interface", "Automated Programming Interface", "Application Process Integration"}},
	{"science", "easy", "Which planet is known as the Red Planet?", "Mars",
		[]string{"Venus", "Jupiter", "Saturn"}},
	{"science", "easy", "What is H2O more commonly known as?", "Water",
		[]string{"Oxygen", "Hydrogen", "Carbon Dioxide"}},
	{"history", "easy", "In which year did World War II end?", "1945",
		[]string{"1944", "1946", "1943"}},
	{"arts", "easy", "Who painted the Mona Lisa?", "Leonardo da Vinci",
		[]string{"Pablo Picasso", "Vincent van Gogh", "Michelangelo"}},
}

// Seed inserts the starter question set once, on an empty table.
func Seed(ctx context.Context, repo Repository) error {
	log := config.WithContext(ctx)

	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug("Questions already exist, skipping seed")
		return nil
	}

	questions := make([]*Question, 0, len(seedQuestions))
	for _, sq := range seedQuestions {
		incorrect, err := json.Marshal(sq.incorrect)
		if err != nil {
			return err
		}
		questions = append(questions, &Question{
			Category:         sq.category,
			Difficulty:       sq.difficulty,
			Question:         sq.question,
			CorrectAnswer:    sq.correct,
			IncorrectAnswers: datatypes.JSON(incorrect),
		})
	}

	if err := repo.CreateBatch(questions); err != nil {
		return err
	}

	log.Info("Seeded starter questions", "count", len(questions))
	return nil
}
