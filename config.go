package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/9seconds/ipmapper/maplib"
	"github.com/go-playground/validator/v10"
	"github.com/hjson/hjson-go/v4"
	"github.com/spf13/afero"
)

const (
	DefaultListen      = "127.0.0.1:8501"
	DefaultHTTPTimeout = 10 * time.Second
)

var configValidator = validator.New()

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v interface{}

	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("cannot unmarshal duration: %w", err)
	}

	vv, ok := v.(string)
	if !ok {
		return fmt.Errorf("incorrect duration: %v", v)
	}

	dur, err := time.ParseDuration(vv)
	if err != nil {
		return fmt.Errorf("cannot parse duration: %w", err)
	}

	d.Duration = dur

	return nil
}

type config struct {
	Listen          string           `json:"listen" validate:"omitempty,hostname_port"`
	BasicAuth       configBasicAuth  `json:"basic_auth"`
	SelfIPURL       string           `json:"self_ip_url" validate:"omitempty,url"`
	DefaultProvider string           `json:"default_provider" validate:"omitempty,oneof=ipapi ipinfo ipgeolocation"`
	UploadLimit     uint             `json:"upload_limit"`
	RequestTimeout  duration         `json:"request_timeout"`
	HTTPTimeout     duration         `json:"http_timeout"`
	Map             configMap        `json:"map"`
	Providers       []configProvider `json:"providers" validate:"dive"`
}

func (c config) GetListen() string {
	if c.Listen != "" {
		return c.Listen
	}

	return DefaultListen
}

func (c config) GetSelfIPURL() string {
	if c.SelfIPURL != "" {
		return c.SelfIPURL
	}

	return maplib.DefaultSelfIPURL
}

func (c config) GetDefaultProvider() maplib.ProviderName {
	if c.DefaultProvider != "" {
		return maplib.ProviderName(c.DefaultProvider)
	}

	return maplib.ProviderIPAPI
}

func (c config) GetUploadLimit() int64 {
	if c.UploadLimit == 0 {
		return maplib.DefaultUploadLimit
	}

	return int64(c.UploadLimit)
}

func (c config) GetRequestTimeout() time.Duration {
	if c.RequestTimeout.Duration == 0 {
		return maplib.DefaultRequestTimeout
	}

	return c.RequestTimeout.Duration
}

func (c config) GetHTTPTimeout() time.Duration {
	if c.HTTPTimeout.Duration == 0 {
		return DefaultHTTPTimeout
	}

	return c.HTTPTimeout.Duration
}

// GetProviders returns all providers with default settings if config
// has none.
func (c config) GetProviders() []configProvider {
	if len(c.Providers) > 0 {
		return c.Providers
	}

	rv := []configProvider{}

	for _, v := range maplib.ProviderNames() {
		rv = append(rv, configProvider{Name: v.String()})
	}

	return rv
}

type configBasicAuth struct {
	User     string `json:"user"`
	Password string `json:"password" validate:"required_with=User"`
}

func (c configBasicAuth) Enabled() bool {
	return c.User != ""
}

type configMap struct {
	TileURL     string `json:"tile_url"`
	Attribution string `json:"attribution"`
	Zoom        uint   `json:"zoom" validate:"lte=20"`
}

func (c configMap) GetZoom() int {
	if c.Zoom == 0 {
		return maplib.DefaultZoom
	}

	return int(c.Zoom)
}

type configProvider struct {
	Name               string            `json:"name" validate:"required,oneof=ipapi ipinfo ipgeolocation"`
	HTTPTimeout        duration          `json:"http_timeout"`
	SpecificParameters map[string]string `json:"specific_parameters"`
}

func (c configProvider) GetName() maplib.ProviderName {
	return maplib.ProviderName(c.Name)
}

func (c configProvider) GetHTTPTimeout() time.Duration {
	if c.HTTPTimeout.Duration == 0 {
		return DefaultHTTPTimeout
	}

	return c.HTTPTimeout.Duration
}

func (c configProvider) GetSpecificParameters() map[string]string {
	if c.SpecificParameters == nil {
		return map[string]string{}
	}

	return c.SpecificParameters
}

func parseConfig(fs afero.Fs, path string) (*config, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}

	return decodeConfig(content)
}

func decodeConfig(content []byte) (*config, error) {
	conf := config{}
	rawMap := map[string]interface{}{}

	if err := hjson.Unmarshal(content, &rawMap); err != nil {
		return nil, fmt.Errorf("cannot parse json: %w", err)
	}

	rawBytes, _ := json.Marshal(rawMap)

	if err := json.Unmarshal(rawBytes, &conf); err != nil {
		return nil, fmt.Errorf("incorrect config structure: %w", err)
	}

	if err := configValidator.Struct(conf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seenProviderNames := map[string]struct{}{}

	for _, v := range conf.Providers {
		if _, ok := seenProviderNames[v.Name]; ok {
			return nil, fmt.Errorf("provider %s is duplicated", v.Name)
		}

		seenProviderNames[v.Name] = struct{}{}
	}

	if len(conf.Providers) > 0 {
		if _, ok := seenProviderNames[conf.GetDefaultProvider().String()]; !ok {
			return nil, fmt.Errorf("default provider %s is not configured", conf.GetDefaultProvider())
		}
	}

	return &conf, nil
}

func defaultConfig() *config {
	return &config{}
}
