package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"math/big"
	"os"
	"strings"

	"google.golang.org/grpc"

	"github.com/MaiAphrodite/difie-hellman/algorithm"
	exchangepb "github.com/MaiAphrodite/difie-hellman/proto/exchangepb"
)

func main() {
	// Установка соединения с сервером gRPC
	conn, err := grpc.Dial("localhost:50051", grpc.WithInsecure())
	if err != nil {
		log.Fatalf("Не удалось подключиться к серверу: %v", err)
	}
	defer conn.Close()

	client := exchangepb.NewExchangeServiceClient(conn)
	reader := bufio.NewReader(os.Stdin)

	// Создание сессии или подключение к существующей
	fmt.Print("Введите ID сессии (или нажмите Enter для создания новой): ")
	sessionID, _ := reader.ReadString('\n')
	sessionID = strings.TrimSpace(sessionID)

	if sessionID == "" {
		sessionID = createSession(client, reader)
	} else {
		resp, err := client.GetSession(context.Background(), &exchangepb.SessionRequest{
			SessionId: sessionID,
		})
		if err != nil {
			log.Fatalf("Ошибка при получении сессии: %v", err)
		}
		fmt.Printf("Подключились к сессии %s\n", sessionID)
		printState(resp.GetState())
	}

	printHelp()

	// Цикл команд
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		command := strings.TrimSpace(line)

		switch command {
		case "":
			continue
		case "next":
			doSessionOp(sessionID, client.Advance)
		case "back":
			doSessionOp(sessionID, client.Retreat)
		case "reset":
			doSessionOp(sessionID, client.Reset)
		case "keys":
			doSessionOp(sessionID, client.RandomizeKeys)
		case "random":
			doSessionOp(sessionID, client.RandomizeAll)
		case "auto":
			doSessionOp(sessionID, client.StartAutoAdvance)
		case "stop":
			doSessionOp(sessionID, client.StopAutoAdvance)
		case "state":
			doSessionOp(sessionID, client.GetSession)
		case "watch":
			watchSteps(client, sessionID)
		case "quit":
			_, err := client.CloseSession(context.Background(), &exchangepb.SessionRequest{
				SessionId: sessionID,
			})
			if err != nil {
				log.Printf("Ошибка при закрытии сессии: %v", err)
			}
			fmt.Println("Сессия закрыта")
			return
		case "help":
			printHelp()
		default:
			fmt.Printf("Неизвестная команда: %s (help — список команд)\n", command)
		}
	}
}

func createSession(client exchangepb.ExchangeServiceClient, reader *bufio.Reader) string {
	fmt.Print("Сгенерировать параметры случайно? (y/n): ")
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(answer)

	req := &exchangepb.CreateSessionRequest{}
	if answer == "y" || answer == "Y" {
		req.Randomize = true
	} else {
		fmt.Print("Введите простой модуль p: ")
		p, _ := reader.ReadString('\n')
		fmt.Print("Введите генератор g: ")
		g, _ := reader.ReadString('\n')
		fmt.Print("Введите секрет Алисы a: ")
		a, _ := reader.ReadString('\n')
		fmt.Print("Введите секрет Боба b: ")
		b, _ := reader.ReadString('\n')
		req.P = strings.TrimSpace(p)
		req.G = strings.TrimSpace(g)
		req.A = strings.TrimSpace(a)
		req.B = strings.TrimSpace(b)
	}

	resp, err := client.CreateSession(context.Background(), req)
	if err != nil {
		log.Fatalf("Ошибка при создании сессии: %v", err)
	}
	if !resp.GetSuccess() {
		log.Fatalf("Сессия не создана: %s", resp.GetError())
	}

	state := resp.GetState()
	fmt.Printf("Сессия создана с ID: %s\n", state.GetSessionId())
	printState(state)
	return state.GetSessionId()
}

// doSessionOp выполняет унарную операцию над сессией и печатает результат.
func doSessionOp(sessionID string,
	op func(context.Context, *exchangepb.SessionRequest, ...grpc.CallOption) (*exchangepb.SessionResponse, error)) {

	resp, err := op(context.Background(), &exchangepb.SessionRequest{SessionId: sessionID})
	if err != nil {
		log.Printf("Ошибка вызова: %v", err)
		return
	}
	if !resp.GetSuccess() {
		fmt.Printf("Отказ: %s\n", resp.GetError())
		return
	}
	printState(resp.GetState())
}

// watchSteps подписывается на поток событий и печатает шаги до конца
// демонстрации или обрыва потока.
func watchSteps(client exchangepb.ExchangeServiceClient, sessionID string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := client.WatchSteps(ctx, &exchangepb.SessionRequest{SessionId: sessionID})
	if err != nil {
		log.Printf("Ошибка при подписке на события: %v", err)
		return
	}

	fmt.Println("Наблюдение за шагами (поток закроется на шаге 9)...")
	for {
		event, err := stream.Recv()
		if err != nil {
			log.Printf("Поток событий завершён: %v", err)
			return
		}
		fmt.Printf("[шаг %d] %s\n", event.GetStep(), event.GetTitle())
		if event.GetStep() >= 9 {
			printState(event.GetState())
			return
		}
	}
}

func printState(state *exchangepb.SessionState) {
	if state == nil {
		return
	}
	fmt.Printf("Шаг %d: %s\n", state.GetStep(), state.GetTitle())
	fmt.Printf("  p=%s g=%s a=%s b=%s\n", state.GetP(), state.GetG(), state.GetA(), state.GetB())
	printValue("  A = g^a mod p", state.GetAlicePublic())
	printValue("  B = g^b mod p", state.GetBobPublic())
	printValue("  S (Алиса)", state.GetAliceShared())
	printValue("  S (Боб)", state.GetBobShared())
	if state.GetVerified() {
		fmt.Println("  Секреты совпали!")
		printFingerprint(state.GetAliceShared())
	}
	if state.GetAutoActive() {
		fmt.Println("  [автопроигрывание активно]")
	}
}

func printValue(label, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%s: %s\n", label, value)
}

// printFingerprint печатает SHA-256 отпечаток общего секрета — то, что
// стороны могли бы использовать как симметричный ключ.
func printFingerprint(shared string) {
	n, ok := new(big.Int).SetString(shared, 10)
	if !ok {
		return
	}
	digest := algorithm.HashSharedKey(n)
	fmt.Printf("  SHA-256 ключа: %s\n", hex.EncodeToString(digest))
}

func printHelp() {
	fmt.Println("Команды:")
	fmt.Println("  next   — шаг вперёд")
	fmt.Println("  back   — шаг назад")
	fmt.Println("  reset  — сброс к шагу 0")
	fmt.Println("  keys   — новые случайные секреты a, b")
	fmt.Println("  random — новые p, g, a, b")
	fmt.Println("  auto   — запустить автопроигрывание")
	fmt.Println("  stop   — остановить автопроигрывание")
	fmt.Println("  state  — текущее состояние")
	fmt.Println("  watch  — поток событий шагов")
	fmt.Println("  quit   — закрыть сессию и выйти")
}
