package zmq

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"BattleFS/internal/application/service"
	"BattleFS/internal/platform/config"

	"github.com/go-zeromq/zmq4"
	"github.com/google/uuid"
	json "github.com/json-iterator/go"
	"go.uber.org/dig"
)

const (
	INIT     = "INIT"
	CREATE   = "CREATE"
	READ     = "READ"
	DELETE   = "DELETE"
	LIST     = "LIST"
	LOAD_DIR = "LOAD_DIR"
)

type Services struct {
	dig.In

	Init   *service.InitStoreService
	Create *service.CreateObjectService
	Read   *service.ReadObjectService
	Delete *service.DeleteObjectService
	List   *service.ListObjectsService
	Load   *service.LoadDirectoryService
}

// ZmqApi answers one request at a time on a REP socket; the store is
// serialized behind its session anyway.
type ZmqApi struct {
	config   config.Config
	services Services
	logger   *slog.Logger
	socket   zmq4.Socket
}

func NewZmqApi(services Services, conf config.Config, logger *slog.Logger) *ZmqApi {
	return &ZmqApi{
		config:   conf,
		services: services,
		logger:   logger,
	}
}

// Listen serves requests until ctx is done.
func (z *ZmqApi) Listen(ctx context.Context) error {
	address := fmt.Sprintf("tcp://*:%d", z.config.ZmqApiPort)
	z.socket = zmq4.NewRep(ctx)
	if err := z.socket.Listen(address); err != nil {
		return fmt.Errorf("zmq listen %s: %w", address, err)
	}
	z.logger.Info("zmq api listening", "addr", address)

	for {
		msg, err := z.socket.Recv()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, zmq4.ErrClosedConn) {
				z.logger.Info("zmq api stopped")
				return nil
			}
			z.logger.Warn("zmq recv error", "err", err)
			continue
		}

		if err := z.socket.Send(zmq4.NewMsg(z.handle(msg.Bytes()))); err != nil {
			z.logger.Warn("zmq send error", "err", err)
		}
	}
}

// handle decodes one request payload and returns the encoded response.
func (z *ZmqApi) handle(payload []byte) []byte {
	var req ApiRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		z.logger.Warn("zmq unmarshal error", "err", err)
		return z.marshal(ApiResponse{Success: false, Error: err.Error()})
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	response := z.processRequest(&req)
	response.RequestID = req.RequestID
	return z.marshal(response)
}

func (z *ZmqApi) processRequest(req *ApiRequest) ApiResponse {
	logger := z.logger.With("request_id", req.RequestID, "action", req.Action)

	switch req.Action {
	case INIT:
		result := z.services.Init.Execute(service.InitStoreCommand{Name: req.Path})
		return ApiResponse{Success: true, Name: result.Name}

	case CREATE:
		result, err := z.services.Create.Execute(service.CreateObjectCommand{Path: req.Path})
		if err != nil {
			return failure(logger, err)
		}
		return ApiResponse{Success: true, Entry: &result.Entry}

	case READ:
		var data bytes.Buffer
		if err := z.services.Read.Execute(service.ReadObjectQuery{Name: req.Path, Output: &data}); err != nil {
			return failure(logger, err)
		}
		return ApiResponse{Success: true, Data: data.Bytes()}

	case DELETE:
		result, err := z.services.Delete.Execute(service.DeleteObjectCommand{Name: req.Path})
		if err != nil {
			return failure(logger, err)
		}
		return ApiResponse{Success: true, Entry: &result.Entry}

	case LIST:
		listing, err := z.services.List.Execute()
		if err != nil {
			return failure(logger, err)
		}
		return ApiResponse{Success: true, Listing: &listing}

	case LOAD_DIR:
		result, err := z.services.Load.Execute(service.LoadDirectoryCommand{Dir: req.Path})
		if err != nil {
			return failure(logger, err)
		}
		response := ApiResponse{Success: true, Loaded: result.Loaded}
		if len(result.Failed) > 0 {
			response.Failed = make(map[string]string, len(result.Failed))
			for path, ferr := range result.Failed {
				response.Failed[path] = ferr.Error()
			}
		}
		return response

	default:
		logger.Warn("unknown action")
		return ApiResponse{Success: false, Error: fmt.Sprintf("unknown action %q", req.Action)}
	}
}

func failure(logger *slog.Logger, err error) ApiResponse {
	logger.Debug("request failed", "err", err)
	return ApiResponse{Success: false, Error: err.Error()}
}

func (z *ZmqApi) marshal(response ApiResponse) []byte {
	payload, err := json.Marshal(response)
	if err != nil {
		z.logger.Error("error marshalling response", "err", err)
		payload = []byte(`{"success":false}`)
	}
	return payload
}

func (z *ZmqApi) Close() error {
	if z.socket == nil {
		return nil
	}
	return z.socket.Close()
}
