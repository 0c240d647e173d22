package trivia

import (
	"context"

	"github.com/sorteoplay/minigames-go/internal/dependencies/random"
	"github.com/sorteoplay/minigames-go/internal/model"
)

// QuestionSource supplies questions for trivia sessions.
//
// Implementations must return a question whose text is not in excluded
// when possible, must shuffle the option order, and must never fail: on
// internal errors they fall back to a fixed default question for the tier.
type QuestionSource interface {
	FetchQuestion(ctx context.Context, tier model.Tier, excluded []string) *model.Question
}

// rawQuestion is a bank entry before option shuffling
type rawQuestion struct {
	text      string
	correct   string
	incorrect []string
	category  string
}

var questionBank = map[model.Tier][]rawQuestion{
	model.TierEasy: {
		{"¿Cuál es la capital de Chile?", "Santiago", []string{"Valparaíso", "Concepción", "Viña del Mar"}, "Geografía"},
		{"¿Cuántos días tiene un año bisiesto?", "366", []string{"365", "364", "367"}, "Conocimiento General"},
		{"¿Cuál es el océano más grande del mundo?", "Pacífico", []string{"Atlántico", "Índico", "Ártico"}, "Geografía"},
		{"¿Qué animal es conocido como el rey de la selva?", "León", []string{"Tigre", "Elefante", "Gorila"}, "Naturaleza"},
		{"¿Cuántos continentes hay en el mundo?", "7", []string{"5", "6", "8"}, "Geografía"},
		{"¿Cuál es el planeta más cercano al Sol?", "Mercurio", []string{"Venus", "Marte", "Tierra"}, "Ciencia"},
		{"¿Qué color resulta de mezclar rojo y amarillo?", "Naranja", []string{"Verde", "Morado", "Marrón"}, "Arte"},
		{"¿Cuántas patas tiene una araña?", "8", []string{"6", "10", "12"}, "Naturaleza"},
	},
	model.TierMedium: {
		{"¿En qué año se descubrió América?", "1492", []string{"1482", "1502", "1512"}, "Historia"},
		{"¿Cuál es el río más largo del mundo?", "Amazonas", []string{"Nilo", "Yangtsé", "Misisipi"}, "Geografía"},
		{"¿Quién pintó la Mona Lisa?", "Leonardo da Vinci", []string{"Miguel Ángel", "Rafael", "Donatello"}, "Arte"},
		{"¿Cuál es la moneda de Japón?", "Yen", []string{"Won", "Yuan", "Rupia"}, "Conocimiento General"},
		{"¿En qué país se encuentra la Torre Eiffel?", "Francia", []string{"Italia", "España", "Alemania"}, "Geografía"},
		{"¿Cuál es el metal más abundante en la corteza terrestre?", "Aluminio", []string{"Hierro", "Cobre", "Oro"}, "Ciencia"},
		{"¿Qué órgano del cuerpo humano bombea sangre?", "Corazón", []string{"Pulmones", "Hígado", "Riñones"}, "Ciencia"},
		{"¿Cuántos huesos tiene el cuerpo humano adulto?", "206", []string{"186", "216", "196"}, "Ciencia"},
	},
	model.TierHard: {
		{"¿En qué año cayó el Muro de Berlín?", "1989", []string{"1987", "1991", "1985"}, "Historia"},
		{"¿Cuál es el elemento químico con símbolo Au?", "Oro", []string{"Plata", "Aluminio", "Argón"}, "Ciencia"},
		{"¿Quién escribió \"Cien años de soledad\"?", "Gabriel García Márquez", []string{"Mario Vargas Llosa", "Jorge Luis Borges", "Pablo Neruda"}, "Literatura"},
		{"¿Cuál es la velocidad de la luz en el vacío (aproximadamente)?", "300,000 km/s", []string{"150,000 km/s", "450,000 km/s", "200,000 km/s"}, "Ciencia"},
		{"¿En qué año comenzó la Primera Guerra Mundial?", "1914", []string{"1912", "1916", "1918"}, "Historia"},
		{"¿Cuál es la capital de Australia?", "Canberra", []string{"Sídney", "Melbourne", "Brisbane"}, "Geografía"},
		{"¿Quién desarrolló la teoría de la relatividad?", "Albert Einstein", []string{"Isaac Newton", "Galileo Galilei", "Stephen Hawking"}, "Ciencia"},
		{"¿Cuál es el idioma más hablado en el mundo por número de hablantes nativos?", "Chino Mandarín", []string{"Inglés", "Español", "Hindi"}, "Conocimiento General"},
	},
}

var defaultQuestions = map[model.Tier]rawQuestion{
	model.TierEasy:   {"¿Cuál es la capital de Francia?", "París", []string{"Londres", "Berlín", "Madrid"}, "Geografía"},
	model.TierMedium: {"¿En qué año llegó el hombre a la Luna?", "1969", []string{"1968", "1970", "1971"}, "Historia"},
	model.TierHard:   {"¿Cuál es el elemento químico con símbolo Fe?", "Hierro", []string{"Plata", "Cobre", "Oro"}, "Ciencia"},
}

// BankSource serves questions from the built-in Spanish question bank
type BankSource struct {
	random random.Random
}

// NewBankSource creates a new BankSource
func NewBankSource(rnd random.Random) *BankSource {
	return &BankSource{
		random: rnd,
	}
}

// Ensure BankSource implements QuestionSource
var _ QuestionSource = (*BankSource)(nil)

// FetchQuestion picks a random unseen question from the tier's pool,
// reusing the full pool once every question has been served
func (b *BankSource) FetchQuestion(ctx context.Context, tier model.Tier, excluded []string) *model.Question {
	pool := questionBank[poolTier(tier)]
	if len(pool) == 0 {
		return b.defaultQuestion(tier)
	}

	seen := make(map[string]bool, len(excluded))
	for _, text := range excluded {
		seen[text] = true
	}

	available := make([]rawQuestion, 0, len(pool))
	for _, q := range pool {
		if !seen[q.text] {
			available = append(available, q)
		}
	}
	if len(available) == 0 {
		available = pool
	}

	raw := available[b.random.Intn(len(available))]
	return b.prepare(raw, tier)
}

// DefaultQuestion returns the fixed fallback question for a tier
func (b *BankSource) DefaultQuestion(tier model.Tier) *model.Question {
	return b.defaultQuestion(tier)
}

func (b *BankSource) defaultQuestion(tier model.Tier) *model.Question {
	raw, ok := defaultQuestions[poolTier(tier)]
	if !ok {
		raw = defaultQuestions[model.TierEasy]
	}
	return b.prepare(raw, tier)
}

// prepare combines correct and incorrect answers into a shuffled option list
func (b *BankSource) prepare(raw rawQuestion, tier model.Tier) *model.Question {
	options := make([]string, 0, len(raw.incorrect)+1)
	options = append(options, raw.correct)
	options = append(options, raw.incorrect...)

	return &model.Question{
		Text:          raw.text,
		Options:       random.Shuffle(b.random, options),
		CorrectAnswer: raw.correct,
		Category:      raw.category,
		Tier:          tier,
	}
}

// poolTier maps the expert tier onto the hard pool; the bank has no
// separate expert questions, only expert point values
func poolTier(tier model.Tier) model.Tier {
	if tier == model.TierExpert {
		return model.TierHard
	}
	return tier
}
