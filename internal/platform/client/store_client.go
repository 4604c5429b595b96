package client

import (
	"fmt"
	"net/http"
	"net/url"

	"BattleFS/internal/domain"

	"github.com/go-resty/resty/v2"
)

const (
	init_endpoint    = "/store/init"
	load_endpoint    = "/store/load"
	objects_endpoint = "/objects"
)

type StoreClient struct {
	client    *resty.Client
	serverUrl string
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewStoreClient(serverUrl string) *StoreClient {
	return &StoreClient{
		client:    resty.New(),
		serverUrl: serverUrl,
	}
}

func (c *StoreClient) ServerUrl() string {
	return c.serverUrl
}

func (c *StoreClient) Init(name string) (string, error) {
	var resp struct {
		Name string `json:"name"`
	}
	body := map[string]string{"name": name}
	r, err := c.client.R().SetBody(body).SetResult(&resp).SetError(&errorResponse{}).Post(c.serverUrl + init_endpoint)
	if err := check(r, err); err != nil {
		return "", err
	}
	return resp.Name, nil
}

// LoadDir asks the server to load a directory it can see and returns how
// many files were stored.
func (c *StoreClient) LoadDir(dir string) (int, error) {
	var resp struct {
		Loaded int `json:"loaded"`
	}
	body := map[string]string{"dir": dir}
	r, err := c.client.R().SetBody(body).SetResult(&resp).SetError(&errorResponse{}).Post(c.serverUrl + load_endpoint)
	if err := check(r, err); err != nil {
		return 0, err
	}
	return resp.Loaded, nil
}

func (c *StoreClient) Create(path string) (*domain.ListingEntry, error) {
	var resp domain.ListingEntry
	body := map[string]string{"path": path}
	r, err := c.client.R().SetBody(body).SetResult(&resp).SetError(&errorResponse{}).Post(c.serverUrl + objects_endpoint)
	if err := check(r, err); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *StoreClient) Read(name string) ([]byte, error) {
	r, err := c.client.R().SetError(&errorResponse{}).Get(c.objectUrl(name))
	if err := check(r, err); err != nil {
		return nil, err
	}
	return r.Body(), nil
}

func (c *StoreClient) Delete(name string) (*domain.ListingEntry, error) {
	var resp domain.ListingEntry
	r, err := c.client.R().SetResult(&resp).SetError(&errorResponse{}).Delete(c.objectUrl(name))
	if err := check(r, err); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *StoreClient) List() (*domain.Listing, error) {
	var resp domain.Listing
	r, err := c.client.R().SetResult(&resp).SetError(&errorResponse{}).Get(c.serverUrl + objects_endpoint)
	if err := check(r, err); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *StoreClient) objectUrl(name string) string {
	return c.serverUrl + objects_endpoint + "/" + url.PathEscape(name)
}

// check turns a transport failure or an error status into an error that
// wraps the matching domain sentinel.
func check(r *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !r.IsError() {
		return nil
	}

	message := r.Status()
	if e, ok := r.Error().(*errorResponse); ok && e.Error != "" {
		message = e.Error
	}
	if sentinel := sentinelFor(r.StatusCode()); sentinel != nil {
		return fmt.Errorf("%w: %s", sentinel, message)
	}
	return fmt.Errorf("server answered %d: %s", r.StatusCode(), message)
}

func sentinelFor(status int) error {
	switch status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrDuplicateKey
	case http.StatusBadRequest:
		return domain.ErrIO
	case http.StatusUnprocessableEntity:
		return domain.ErrDecode
	case http.StatusPreconditionFailed:
		return domain.ErrNotInitialized
	case http.StatusNotImplemented:
		return domain.ErrNotImplemented
	}
	return nil
}
