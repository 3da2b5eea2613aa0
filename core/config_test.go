package core

import "testing"

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ENV", "")

		conf := NewConfig()
		if conf.Env != "DEV" {
			t.Errorf("Env = %q, want DEV", conf.Env)
		}
		if conf.TestMode {
			t.Error("TestMode = true, want false outside the TEST env")
		}
		if conf.Classifier.Provider != "keyword" {
			t.Errorf("Classifier.Provider = %q, want keyword", conf.Classifier.Provider)
		}
	})

	t.Run("test env enables test mode", func(t *testing.T) {
		t.Setenv("ENV", "TEST")

		conf := NewConfig()
		if !conf.TestMode {
			t.Error("TestMode = false, want true in the TEST env")
		}
	})
}
