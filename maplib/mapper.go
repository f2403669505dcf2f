package maplib

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// Request is a single run of Mapper: a raw uploaded text, a chosen
// provider and its credential.
type Request struct {
	Provider   string
	Credential string
	Content    []byte
}

// Report is a result of a single run. View is nil if there is nothing
// to draw, Condition explains why.
type Report struct {
	Self      *Record   `json:"self"`
	IPs       []string  `json:"ips"`
	Records   []Record  `json:"records"`
	Messages  []Message `json:"messages"`
	View      *MapView  `json:"view"`
	Condition error     `json:"-"`
}

func (r *Report) addMessage(level MessageLevel, text string) {
	for _, v := range r.Messages {
		if v.Level == level && v.Text == text {
			return
		}
	}

	r.Messages = append(r.Messages, Message{Level: level, Text: text})
}

// MapperOpts are dependencies of Mapper. SelfLocator, Logger and
// Metrics are optional.
type MapperOpts struct {
	Providers   []Provider
	SelfLocator *SelfLocator
	Logger      Logger
	Metrics     *Metrics
	Zoom        int
}

// Mapper drives the whole pipeline: self location, extraction and
// sequential geolocation of each extracted IP.
type Mapper struct {
	providers map[ProviderName]Provider
	stats     map[ProviderName]*UsageStats
	self      *SelfLocator
	logger    Logger
	metrics   *Metrics
	zoom      int
}

// LocateSelf geolocates a viewer. It returns nil if it is not
// possible. Only failed requests produce a message: a viewer without
// a known location is simply shown as N/A.
func (m *Mapper) LocateSelf(ctx context.Context) (*Record, []Message) {
	if m.self == nil {
		return nil, nil
	}

	record, err := m.self.Locate(ctx)
	if err != nil {
		if m.logger != nil {
			m.logger.SelfLocateError(err)
		}

		if errors.Is(err, ErrNoLocation) {
			return nil, nil
		}

		return nil, []Message{{
			Level: LevelError,
			Text:  fmt.Sprintf("Error fetching user's IP: %v", err),
		}}
	}

	return &record, nil
}

// Lookup dispatches to a provider. Unknown name gives
// ErrUnknownProvider and no request is made.
func (m *Mapper) Lookup(ctx context.Context, name ProviderName, ip net.IP, credential string) (Record, error) {
	provider, ok := m.providers[name]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}

	started := time.Now()
	record, err := provider.Lookup(ctx, ip, credential)

	m.metrics.ObserveLookup(name, err, time.Since(started))

	if stats, ok := m.stats[name]; ok {
		stats.Used(err)
	}

	return record, err
}

// Run performs a full pass. It never fails: every problem becomes
// a message and processing goes on with the next IP.
func (m *Mapper) Run(ctx context.Context, req Request) *Report {
	rv := &Report{
		IPs:      []string{},
		Records:  []Record{},
		Messages: []Message{},
	}

	self, messages := m.LocateSelf(ctx)
	rv.Self = self

	for _, v := range messages {
		rv.addMessage(v.Level, v.Text)
	}

	ips, err := ExtractIPs(req.Content)
	if err != nil {
		if m.logger != nil {
			m.logger.ExtractError(err)
		}

		rv.addMessage(LevelError, fmt.Sprintf("Error loading file: %v", err))
	}

	m.metrics.ObserveExtracted(len(ips))

	rv.IPs = ips

	if len(ips) == 0 {
		rv.Condition = ErrNoIPs
		rv.addMessage(LevelWarning, "No valid IP addresses found in the file.")

		return rv
	}

	name, err := ParseProviderName(req.Provider)
	if err != nil {
		name = ProviderName(req.Provider)
	}

	for _, v := range ips {
		if ctx.Err() != nil {
			rv.addMessage(LevelError, fmt.Sprintf("Processing was interrupted: %v", ctx.Err()))

			break
		}

		record, ok := m.lookupOne(ctx, rv, name, v, req.Credential)
		if !ok {
			continue
		}

		if self != nil && record.IP == self.IP {
			record.Origin = true
		}

		rv.Records = append(rv.Records, record)
	}

	view, err := NewMapView(rv.Records, self, m.zoom)
	if err != nil {
		rv.Condition = err
		rv.addMessage(LevelWarning,
			"No geolocation data found. Please check your API token or input file.")

		return rv
	}

	rv.View = &view

	return rv
}

func (m *Mapper) lookupOne(ctx context.Context,
	report *Report,
	name ProviderName,
	ip, credential string) (Record, bool) {
	parsedIP := net.ParseIP(ip)
	record, err := m.Lookup(ctx, name, parsedIP, credential)

	switch Classify(err) {
	case OutcomeLocated:
		return record, true
	case OutcomeConfigError:
		if errors.Is(err, ErrCredentialRequired) {
			report.addMessage(LevelWarning, name.Service()+" requires a valid API token.")
		} else {
			report.addMessage(LevelWarning, err.Error())
		}
	case OutcomeNoData:
		if m.logger != nil {
			m.logger.LookupSkipped(parsedIP, name, err)
		}
	case OutcomeTransportError:
		if m.logger != nil {
			m.logger.LookupError(parsedIP, name, err)
		}

		report.addMessage(LevelError,
			fmt.Sprintf("Error fetching data for %s from %s: %v", ip, name.Service(), err))
	}

	return Record{}, false
}

// UsageStats returns per-provider counters sorted in the same order as
// ProviderNames.
func (m *Mapper) UsageStats() []*UsageStats {
	rv := make([]*UsageStats, 0, len(m.stats))

	for _, v := range ProviderNames() {
		if stats, ok := m.stats[v]; ok {
			rv = append(rv, stats)
		}
	}

	return rv
}

// Providers returns names of providers this mapper can dispatch to.
func (m *Mapper) Providers() []ProviderName {
	rv := make([]ProviderName, 0, len(m.providers))

	for _, v := range ProviderNames() {
		if _, ok := m.providers[v]; ok {
			rv = append(rv, v)
		}
	}

	return rv
}

func NewMapper(opts MapperOpts) (*Mapper, error) {
	rv := &Mapper{
		providers: map[ProviderName]Provider{},
		stats:     map[ProviderName]*UsageStats{},
		self:      opts.SelfLocator,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		zoom:      opts.Zoom,
	}

	for _, v := range opts.Providers {
		name := v.Name()

		if _, err := ParseProviderName(name.String()); err != nil {
			return nil, fmt.Errorf("cannot register provider: %w", err)
		}

		if _, ok := rv.providers[name]; ok {
			return nil, fmt.Errorf("provider %s is duplicated", name)
		}

		rv.providers[name] = v
		rv.stats[name] = &UsageStats{Name: name}
	}

	return rv, nil
}
