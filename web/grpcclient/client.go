// web/grpcclient/client.go
package grpcclient

import (
	"log"
	"os"

	"google.golang.org/grpc"

	exchangepb "github.com/MaiAphrodite/difie-hellman/proto/exchangepb"
)

// Exchange — общий клиент gRPC для всех обработчиков веб-слоя.
var Exchange exchangepb.ExchangeServiceClient

var conn *grpc.ClientConn

// InitGRPCClient устанавливает соединение с gRPC-сервером
func InitGRPCClient() {
	addr := os.Getenv("GRPC_SERVER_ADDR")
	if addr == "" {
		addr = "localhost:50051"
	}

	var err error
	conn, err = grpc.Dial(addr, grpc.WithInsecure())
	if err != nil {
		log.Fatalf("Не удалось подключиться к gRPC-серверу: %v", err)
	}
	Exchange = exchangepb.NewExchangeServiceClient(conn)
}

// CloseGRPC закрывает соединение с gRPC-сервером
func CloseGRPC() {
	if conn != nil {
		conn.Close()
	}
}
