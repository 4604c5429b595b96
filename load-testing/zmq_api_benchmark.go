package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	api "BattleFS/internal/platform/api/zmq"

	"github.com/go-zeromq/zmq4"
	"github.com/google/uuid"
	json "github.com/json-iterator/go"
	"github.com/spf13/pflag"
)

var errTimeout = errors.New("request timeout")

// Cliente ZMQ
type ZmqClient struct {
	address string
	socket  zmq4.Socket
	timeout time.Duration
}

func NewZmqClient(address string, timeout time.Duration) (*ZmqClient, error) {
	c := &ZmqClient{
		address: address,
		timeout: timeout,
	}
	if err := c.dial(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ZmqClient) dial() error {
	socket := zmq4.NewReq(context.Background())
	if err := socket.Dial(c.address); err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.address, err)
	}
	c.socket = socket
	return nil
}

// SendRequest sends req and waits up to the client timeout for the reply.
// After a timeout the REQ socket still expects that reply, so it is closed,
// which also unblocks the pending Recv, and dialed again.
func (c *ZmqClient) SendRequest(req api.ApiRequest) (api.ApiResponse, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return api.ApiResponse{}, fmt.Errorf("failed to marshal request: %w", err)
	}
	if err := c.socket.Send(zmq4.NewMsg(payload)); err != nil {
		return api.ApiResponse{}, fmt.Errorf("failed to send request: %w", err)
	}

	socket := c.socket
	msgChan := make(chan zmq4.Msg, 1)
	errChan := make(chan error, 1)
	go func() {
		msg, err := socket.Recv()
		if err != nil {
			errChan <- err
			return
		}
		msgChan <- msg
	}()

	select {
	case msg := <-msgChan:
		var resp api.ApiResponse
		if err := json.Unmarshal(msg.Bytes(), &resp); err != nil {
			return api.ApiResponse{}, fmt.Errorf("failed to unmarshal response: %w", err)
		}
		return resp, nil
	case err := <-errChan:
		return api.ApiResponse{}, err
	case <-time.After(c.timeout):
		socket.Close()
		if err := c.dial(); err != nil {
			return api.ApiResponse{}, fmt.Errorf("%w: %w", errTimeout, err)
		}
		return api.ApiResponse{}, errTimeout
	}
}

func (c *ZmqClient) Close() error {
	return c.socket.Close()
}

// seedFiles escribe n ficheros con contenido repetitivo y devuelve sus rutas
func seedFiles(dir string, n int) ([]string, error) {
	paths := make([]string, 0, n)
	for i := 0; i < n; i++ {
		path := filepath.Join(dir, fmt.Sprintf("bench_%04d.txt", i))
		content := strings.Repeat(fmt.Sprintf("BattleFS benchmark payload %d ", i%7), 64+i%128)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Mezcla de acciones: sobre todo lecturas, algún listado y ciclos delete/create
func pickAction(r *rand.Rand) string {
	switch n := r.Intn(100); {
	case n < 70:
		return api.READ
	case n < 80:
		return api.LIST
	case n < 90:
		return api.DELETE
	default:
		return api.CREATE
	}
}

func worker(id int, address string, timeout, duration time.Duration, paths []string,
	stats *BenchmarkStats, wg *sync.WaitGroup) {
	defer wg.Done()

	client, err := NewZmqClient(address, timeout)
	if err != nil {
		log.Printf("Worker %d failed to create client: %v", id, err)
		return
	}
	defer client.Close()

	r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
	endTime := time.Now().Add(duration)
	for time.Now().Before(endTime) {
		req := api.ApiRequest{
			Action: pickAction(r),
			Path:   paths[r.Intn(len(paths))],
		}

		start := time.Now()
		resp, err := client.SendRequest(req)
		stats.AddResult(RequestResult{
			Action:   req.Action,
			Duration: time.Since(start),
			Success:  err == nil && resp.Success,
			TimedOut: errors.Is(err, errTimeout),
		})
	}
	log.Printf("Worker %d completed", id)
}

func setup(address string, timeout time.Duration, dir string, files int) ([]string, error) {
	paths, err := seedFiles(dir, files)
	if err != nil {
		return nil, err
	}

	client, err := NewZmqClient(address, timeout)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if resp, err := client.SendRequest(api.ApiRequest{Action: api.INIT, Path: "benchmark"}); err != nil || !resp.Success {
		return nil, fmt.Errorf("init failed: %v %s", err, resp.Error)
	}
	resp, err := client.SendRequest(api.ApiRequest{Action: api.LOAD_DIR, Path: dir})
	if err != nil || !resp.Success {
		return nil, fmt.Errorf("load_dir failed: %v %s", err, resp.Error)
	}
	log.Printf("Loaded %d files into the store", resp.Loaded)
	return paths, nil
}

func main() {
	var (
		address  = pflag.String("address", "tcp://localhost:5555", "ZMQ server address")
		workers  = pflag.Int("workers", 10, "Number of worker goroutines")
		files    = pflag.Int("files", 200, "Number of files to seed")
		duration = pflag.Duration("duration", 30*time.Second, "Test duration")
		timeout  = pflag.Duration("timeout", 5*time.Second, "Request timeout")
	)
	pflag.Parse()

	dir, err := os.MkdirTemp("", "battlefs-bench-")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	paths, err := setup(*address, *timeout, dir, *files)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Starting benchmark with %d workers for %v against %s\n", *workers, *duration, *address)
	stats := &BenchmarkStats{StartTime: time.Now()}

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go worker(i, *address, *timeout, *duration, paths, stats, &wg)
	}
	wg.Wait()
	stats.EndTime = time.Now()

	stats.WriteReport(os.Stdout)
}
