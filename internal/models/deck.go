package models

// Deck is an ordered sequence of cards; index 0 is the next draw.
type Deck []*Card

// Draw removes and returns up to n cards from the top of the deck. Drawing
// from an exhausted deck is not an error; the caller simply receives fewer
// cards (possibly none).
func (d *Deck) Draw(n int) []*Card {
	if n <= 0 || len(*d) == 0 {
		return nil
	}
	if n > len(*d) {
		n = len(*d)
	}
	drawn := make([]*Card, n)
	copy(drawn, (*d)[:n])
	*d = (*d)[n:]
	return drawn
}
