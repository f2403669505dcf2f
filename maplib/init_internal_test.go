package maplib

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/stretchr/testify/mock"
)

type ProviderMock struct {
	mock.Mock
}

func (m *ProviderMock) Lookup(ctx context.Context, ip net.IP, credential string) (Record, error) {
	args := m.Called(ctx, ip, credential)

	return args.Get(0).(Record), args.Error(1)
}

func (m *ProviderMock) Name() ProviderName {
	return m.Called().Get(0).(ProviderName)
}

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) LookupError(ip net.IP, name ProviderName, err error) {
	m.Called(ip, name, err)
}

func (m *LoggerMock) LookupSkipped(ip net.IP, name ProviderName, err error) {
	m.Called(ip, name, err)
}

func (m *LoggerMock) SelfLocateError(err error) {
	m.Called(err)
}

func (m *LoggerMock) ExtractError(err error) {
	m.Called(err)
}

func (m *LoggerMock) RenderError(err error) {
	m.Called(err)
}

func (m *LoggerMock) RequestServed(req *http.Request, status, size int, elapsed time.Duration) {
	m.Called(req, status, size, elapsed)
}
