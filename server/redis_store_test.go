package main

import (
	"strconv"
	"testing"

	"github.com/MaiAphrodite/difie-hellman/session"
)

// redis отдаёт hash как map[string]string; имитируем его кодирование
// (int — десятичная запись, bool — "1"/"0")
func encodeAsRedis(fields map[string]interface{}) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		switch value := v.(type) {
		case string:
			out[k] = value
		case int:
			out[k] = strconv.Itoa(value)
		case bool:
			if value {
				out[k] = "1"
			} else {
				out[k] = "0"
			}
		}
	}
	return out
}

func TestSnapshotFieldsRoundTrip(t *testing.T) {
	sess, err := session.NewFromText("23", "5", "6", "15")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 9; i++ {
		if err := sess.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	snap := sess.Snapshot()

	restored := snapshotFromFields(encodeAsRedis(snapshotFields(snap)))
	if restored != snap {
		t.Fatalf("снимок исказился при прохождении через hash: %+v != %+v", restored, snap)
	}
	if !restored.Verified || restored.AliceShared != "2" {
		t.Fatalf("неожиданный восстановленный снимок: %+v", restored)
	}
}

// Восстановление сессии из снимка: новая сессия с той же четвёркой,
// доигранная до сохранённого шага, совпадает с исходной.
func TestRestoreReplaysSnapshot(t *testing.T) {
	orig, err := session.NewFromText("23", "5", "6", "15")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if err := orig.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	saved := snapshotFromFields(encodeAsRedis(snapshotFields(orig.Snapshot())))

	restored, err := session.NewFromText(saved.P, saved.G, saved.A, saved.B)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < saved.Step; i++ {
		if err := restored.Advance(); err != nil {
			t.Fatal(err)
		}
	}

	if restored.Snapshot() != orig.Snapshot() {
		t.Fatalf("воспроизведённая сессия разошлась с исходной:\n%+v\n%+v", restored.Snapshot(), orig.Snapshot())
	}
}
