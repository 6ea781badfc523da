package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"time"

	"github.com/MaiAphrodite/difie-hellman/algorithm"
	"github.com/MaiAphrodite/difie-hellman/session"
)

// Автономная демонстрация обмена Диффи-Хеллмана: без сервера, шаги
// печатаются в стандартный вывод.
func main() {
	p := flag.String("p", "23", "простой модуль p")
	g := flag.String("g", "5", "генератор g")
	a := flag.String("a", "6", "секрет Алисы a")
	b := flag.String("b", "15", "секрет Боба b")
	random := flag.Bool("random", false, "сгенерировать p, g, a, b случайно")
	interval := flag.Duration("interval", 0, "пауза между шагами (например, 500ms)")
	flag.Parse()

	var sess *session.Session
	var err error
	if *random {
		sess, err = session.NewRandom()
	} else {
		sess, err = session.NewFromText(*p, *g, *a, *b)
	}
	if err != nil {
		fmt.Printf("Неверные параметры: %v\n", err)
		os.Exit(1)
	}

	params := sess.Params()
	fmt.Printf("Параметры: p=%s g=%s a=%s b=%s\n\n", params.P, params.G, params.A, params.B)

	for sess.Step() < session.StepVerify {
		if err := sess.Advance(); err != nil {
			log.Fatalf("Шаг прервался: %v", err)
		}
		printStep(sess.Snapshot())
		if *interval > 0 {
			time.Sleep(*interval)
		}
	}

	snap := sess.Snapshot()
	if !snap.Verified {
		log.Fatalf("Секреты не совпали: %s != %s", snap.AliceShared, snap.BobShared)
	}
	shared, _ := new(big.Int).SetString(snap.AliceShared, 10)
	fmt.Printf("\nSHA-256 общего ключа: %s\n", hex.EncodeToString(algorithm.HashSharedKey(shared)))
}

func printStep(snap session.Snapshot) {
	fmt.Printf("Шаг %d: %s\n", snap.Step, snap.Title)
	switch snap.Step {
	case session.StepAlicePublic:
		fmt.Printf("        A = %s\n", snap.AlicePublic)
	case session.StepBobPublic:
		fmt.Printf("        B = %s\n", snap.BobPublic)
	case session.StepAliceShared:
		fmt.Printf("        S = %s\n", snap.AliceShared)
	case session.StepBobShared:
		fmt.Printf("        S = %s\n", snap.BobShared)
	}
}
