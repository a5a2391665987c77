// oraclereg-storaged serves an in-process BlobStore over gRPC so that
// oraclereg CLI invocations (--store=grpc) share durable-for-the-daemon
// registry state.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"xdao.co/oraclereg/storage/grpcstore"
)

func main() {
	listen := flag.String("listen", "127.0.0.1:7411", "listen address host:port")
	flag.Parse()

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	srv := grpc.NewServer()
	grpcstore.RegisterBlobStoreServer(srv, grpcstore.NewServer())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		srv.GracefulStop()
	}()

	fmt.Printf("oraclereg-storaged listening on %s\n", lis.Addr())
	if err := srv.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
