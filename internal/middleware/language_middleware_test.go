package middleware

import (
	"reflect"
	"testing"
)

func TestNegotiateLanguage_ExplicitWins(t *testing.T) {
	supported := []string{"en", "fr", "de"}

	got := negotiateLanguage("fr", "de,en;q=0.8", "en", supported)
	if got != "fr" {
		t.Fatalf("expected fr, got %q", got)
	}
}

func TestNegotiateLanguage_RegionalFallsBackToBase(t *testing.T) {
	supported := []string{"en", "fr"}

	if got := negotiateLanguage("fr-CA", "", "en", supported); got != "fr" {
		t.Fatalf("expected fr, got %q", got)
	}
}

func TestNegotiateLanguage_AcceptHeaderOrder(t *testing.T) {
	supported := []string{"en", "de"}

	got := negotiateLanguage("", "fr;q=0.9,de;q=0.8,en;q=0.1", "en", supported)
	if got != "de" {
		t.Fatalf("expected de, got %q", got)
	}
}

func TestNegotiateLanguage_DefaultWhenNothingMatches(t *testing.T) {
	supported := []string{"en", "fr"}

	if got := negotiateLanguage("it", "es,pt", "en", supported); got != "en" {
		t.Fatalf("expected en, got %q", got)
	}
}

func TestParseAcceptLanguage_SortsByWeight(t *testing.T) {
	got := parseAcceptLanguage("en;q=0.3, fr, de;q=0.7")
	want := []string{"fr", "de", "en"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseAcceptLanguage_SkipsMalformedEntries(t *testing.T) {
	got := parseAcceptLanguage("fr, !!, en")
	want := []string{"fr", "en"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
