package validator

import "testing"

func TestTickerRegex(t *testing.T) {
	valid := []string{"A", "AAPL", "GOOG", "BRK.A", "BF-B", "ABCDEFGHIJ"}
	for _, symbol := range valid {
		if !tickerRegex.MatchString(symbol) {
			t.Errorf("expected %q to be a valid ticker", symbol)
		}
	}

	invalid := []string{"", "aapl", ".AAPL", "1AAPL", "ABCDEFGHIJK", "AA PL"}
	for _, symbol := range invalid {
		if tickerRegex.MatchString(symbol) {
			t.Errorf("expected %q to be rejected", symbol)
		}
	}
}

func TestUsernameRegex(t *testing.T) {
	valid := []string{"bob", "alice_1", "first.last", "a-b-c"}
	for _, username := range valid {
		if !usernameRegex.MatchString(username) {
			t.Errorf("expected %q to be a valid username", username)
		}
	}

	invalid := []string{"", "ab", "has space", "p@ssword", "waaaaaaaaaaaaaaaaaaaaaaaaaaaaytoolong"}
	for _, username := range invalid {
		if usernameRegex.MatchString(username) {
			t.Errorf("expected %q to be rejected", username)
		}
	}
}
