package storage

import "testing"

func TestRecordClearedWords(t *testing.T) {
	store := openTestStore(t)

	if err := store.RecordClearedWords("blocks", []string{"atom", "ion"}); err != nil {
		t.Fatalf("RecordClearedWords() failed: %v", err)
	}
	if err := store.RecordClearedWords("blocks", []string{"atom", ""}); err != nil {
		t.Fatalf("RecordClearedWords() failed: %v", err)
	}
	if err := store.RecordClearedWords("blocks_timed", []string{"ion", "ion"}); err != nil {
		t.Fatalf("RecordClearedWords() failed: %v", err)
	}
	if err := store.RecordClearedWords("blocks", nil); err != nil {
		t.Fatalf("RecordClearedWords(nil) failed: %v", err)
	}

	words, err := store.TopWords("blocks", 10)
	if err != nil {
		t.Fatalf("TopWords() failed: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("Expected 2 words, got %d: %+v", len(words), words)
	}
	if words[0].Word != "atom" || words[0].Times != 2 {
		t.Errorf("words[0] = %+v, want atom x2", words[0])
	}
	if words[1].Word != "ion" || words[1].Times != 1 {
		t.Errorf("words[1] = %+v, want ion x1", words[1])
	}
	if words[0].LastCleared.IsZero() {
		t.Error("LastCleared was not parsed")
	}

	// Across all games ion has 3 clears
	all, err := store.TopWords("", 1)
	if err != nil {
		t.Fatalf("TopWords() failed: %v", err)
	}
	if len(all) != 1 || all[0].Word != "ion" || all[0].Times != 3 {
		t.Errorf("TopWords(all) = %+v, want ion x3", all)
	}
}

func TestTopWordsTieBreaksAlphabetically(t *testing.T) {
	store := openTestStore(t)

	store.RecordClearedWords("blocks", []string{"zinc", "argon", "neon"})

	words, err := store.TopWords("blocks", 0)
	if err != nil {
		t.Fatalf("TopWords() failed: %v", err)
	}
	want := []string{"argon", "neon", "zinc"}
	if len(words) != len(want) {
		t.Fatalf("Expected %d words, got %d", len(want), len(words))
	}
	for i, w := range want {
		if words[i].Word != w {
			t.Errorf("words[%d] = %q, want %q", i, words[i].Word, w)
		}
	}
}

func TestClearWords(t *testing.T) {
	store := openTestStore(t)

	store.RecordClearedWords("blocks", []string{"atom"})
	store.RecordClearedWords("blocks_timed", []string{"ion"})

	if err := store.ClearWords("blocks"); err != nil {
		t.Fatalf("ClearWords() failed: %v", err)
	}
	left, _ := store.TopWords("", 10)
	if len(left) != 1 || left[0].Word != "ion" {
		t.Errorf("after ClearWords(blocks) = %+v", left)
	}

	if err := store.ClearWords(""); err != nil {
		t.Fatalf("ClearWords(all) failed: %v", err)
	}
	left, _ = store.TopWords("", 10)
	if len(left) != 0 {
		t.Errorf("Expected no words, got %+v", left)
	}
}
