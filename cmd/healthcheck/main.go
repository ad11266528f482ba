// Команда healthcheck опрашивает gRPC health сервиса и завершается с кодом 1,
// если сервис не в состоянии SERVING. Предназначена для HEALTHCHECK в контейнере.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/magabrotheeeer/car-inventory/internal/grpc/client"
)

func main() {
	addr := flag.String("addr", "localhost:9090", "адрес gRPC health сервера")
	service := flag.String("service", "", "имя проверяемой зависимости, пусто для общего статуса")
	timeout := flag.Duration("timeout", 3*time.Second, "таймаут запроса")
	flag.Parse()

	if err := run(*addr, *service, *timeout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(addr, service string, timeout time.Duration) error {
	c, err := client.NewHealthClient(addr)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := c.Check(ctx, service)
	if err != nil {
		return err
	}
	out, err := protojson.Marshal(resp)
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return errors.New("not serving")
	}
	return nil
}
