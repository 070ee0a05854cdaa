package explorer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/display"
	"bikeshare/domain/entities/filter"
	"bikeshare/utils"
)

const affirmativeAnswer = "yes"

// ErrInputClosed the user input ended before a valid answer was given
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions to the user until a valid answer is given
type Prompter struct {
	scanner *bufio.Scanner
	printer *display.Printer
}

func NewPrompter(input io.Reader, printer *display.Printer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(input),
		printer: printer,
	}
}

// Ask prints the question and returns the next line of the input
func (p *Prompter) Ask(question string) (string, error) {
	p.printer.Prompt(question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading answer: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// AskValid repeats the question until parse accepts the answer
func (p *Prompter) AskValid(question string, invalidMessage string, parse func(string) (string, error)) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}

		value, err := parse(answer)
		if err == nil {
			return value, nil
		}

		log.Debugf("[component: prompter][status: invalid answer] %s", err.Error())
		p.printer.Warning(invalidMessage)
	}
}

// AskYesNo returns true only if the answer is yes, in any case
func (p *Prompter) AskYesNo(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, affirmativeAnswer), nil
}

// GetFilters asks the user for a city, a month and a day until valid values are given
func (p *Prompter) GetFilters(cities []string, months []string, days []string) (filter.Selection, error) {
	p.printer.Separator()
	p.printer.Info("Hello! Let's explore some US bikeshare data!")
	p.printer.Print("")

	city, err := p.AskValid(
		fmt.Sprintf("Please choose a city name from %s: ", joinTitled(cities, " or ")),
		"Choose a city as mentioned before please.",
		func(answer string) (string, error) { return filter.ParseCity(answer, cities) },
	)
	if err != nil {
		return filter.Selection{}, err
	}

	month, err := p.AskValid(
		fmt.Sprintf("Choose one of the following months --> %s, or all to apply no month filter: ", joinTitled(months, ", ")),
		"Please choose one of the given months.",
		func(answer string) (string, error) { return filter.ParseMonth(answer, months) },
	)
	if err != nil {
		return filter.Selection{}, err
	}

	day, err := p.AskValid(
		"Choose a day of the week, or all to view data from all days: ",
		"Check your writing please and try again.",
		func(answer string) (string, error) { return filter.ParseDay(answer, days) },
	)
	if err != nil {
		return filter.Selection{}, err
	}

	p.printer.Separator()
	return filter.NewSelection(city, month, day), nil
}

func joinTitled(values []string, lastSeparator string) string {
	titled := make([]string, len(values))
	for idx, value := range values {
		words := strings.Fields(value)
		for wordIdx := range words {
			words[wordIdx] = utils.Title(words[wordIdx])
		}
		titled[idx] = strings.Join(words, " ")
	}

	if len(titled) < 2 {
		return strings.Join(titled, "")
	}
	return strings.Join(titled[:len(titled)-1], ", ") + lastSeparator + titled[len(titled)-1]
}
