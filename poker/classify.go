package poker

import "strconv"

// HandSize is the number of cards the classifier accepts.
const HandSize = 5

// noCategory is returned alongside errors so a failed call never reads as a
// valid category.
const noCategory HandCategory = -1

// Evaluation is a classified hand together with the signals that produced it.
type Evaluation struct {
	Cards    []Card       `json:"cards"`
	Category HandCategory `json:"category"`
	Signals  Signals      `json:"signals"`
}

// Resolve returns the strongest category whose signal holds, scanning in
// precedence order. HighCard is returned when nothing else matches.
func Resolve(s Signals) HandCategory {
	for _, c := range Categories {
		if s.Has(c) {
			return c
		}
	}
	return HighCard
}

// Evaluate classifies a normalized hand. Card order does not matter.
func Evaluate(hand []Card) (Evaluation, error) {
	if len(hand) != HandSize {
		return Evaluation{}, &InsufficientCardsError{Got: len(hand), Want: HandSize}
	}
	for i, c := range hand {
		if !c.Rank.Valid() {
			return Evaluation{}, &ValidationError{Index: i, Field: "rank", Value: strconv.Itoa(int(c.Rank)), Reason: "out of range 2-14"}
		}
		if !c.Suit.Valid() {
			return Evaluation{}, &ValidationError{Index: i, Field: "suit", Value: strconv.Itoa(int(c.Suit)), Reason: "unrecognized suit"}
		}
	}

	signals := Detect(Count(hand))
	return Evaluation{
		Cards:    hand,
		Category: Resolve(signals),
		Signals:  signals,
	}, nil
}

// EvaluateRaw normalizes and classifies a hand from the deck service.
func EvaluateRaw(raw []RawCard) (Evaluation, error) {
	if len(raw) != HandSize {
		return Evaluation{}, &InsufficientCardsError{Got: len(raw), Want: HandSize}
	}
	hand, err := NormalizeHand(raw)
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluate(hand)
}

// Classify returns the category of a normalized hand.
func Classify(hand []Card) (HandCategory, error) {
	ev, err := Evaluate(hand)
	if err != nil {
		return noCategory, err
	}
	return ev.Category, nil
}

// ClassifyRaw returns the category of a hand from the deck service.
func ClassifyRaw(raw []RawCard) (HandCategory, error) {
	ev, err := EvaluateRaw(raw)
	if err != nil {
		return noCategory, err
	}
	return ev.Category, nil
}
