package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"pakt/config"
	"pakt/infras/kafka"
	"pakt/infras/metrics"
	"pakt/infras/otel"
	"pakt/internal/domains/preference/model/dto"
	"pakt/shared/clock"
	"pakt/shared/constant"
	"pakt/shared/failure"
	"pakt/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Preference manages the display timezone of a device and formats dates with it.
type Preference interface {
	GetTimezone(ctx context.Context, deviceID string) (dto.TimezoneResponse, error)
	SetTimezone(ctx context.Context, deviceID string, req dto.SetTimezoneRequest) (dto.TimezoneResponse, error)
	FormatDate(ctx context.Context, deviceID string, req dto.FormatDateRequest) (dto.FormatDateResponse, error)
}

type serviceImpl struct {
	preference *timezone.Preference
	formatter  *timezone.Formatter
	metrics    *metrics.Metrics
	events     kafka.Publisher
	topic      string
	clock      clock.Clock
	otel       otel.Otel
}

func New(
	preference *timezone.Preference,
	formatter *timezone.Formatter,
	metrics *metrics.Metrics,
	events kafka.Publisher,
	cfg *config.Config,
	c clock.Clock,
	otel otel.Otel,
) Preference {
	return &serviceImpl{
		preference: preference,
		formatter:  formatter,
		metrics:    metrics,
		events:     events,
		topic:      cfg.Kafka.Topics.TimezoneUpdated,
		clock:      c,
		otel:       otel,
	}
}

func (s *serviceImpl) GetTimezone(ctx context.Context, deviceID string) (res dto.TimezoneResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTimezone")
	defer scope.End()

	if deviceID == "" {
		return res, failure.MissingDeviceID
	}

	res.Timezone = s.preference.For(deviceID).Get(ctx)

	return res, nil
}

func (s *serviceImpl) SetTimezone(ctx context.Context, deviceID string, req dto.SetTimezoneRequest) (res dto.TimezoneResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetTimezone")
	defer scope.End()
	defer func() {
		scope.TraceIfError(err)
		s.metrics.PreferenceWrites.WithLabelValues(metrics.Result(err)).Inc()
	}()

	if deviceID == "" {
		return res, failure.MissingDeviceID
	}

	stored, err := s.preference.For(deviceID).Set(ctx, req.Timezone)
	if err != nil {
		log.Error().Err(err).Str("device_id", deviceID).Msg("failed to set timezone preference")

		return res, failure.ServiceUnavailable(err) //nolint:wrapcheck
	}

	scope.SetAttribute("timezone", stored)

	s.publishTimezoneUpdated(ctx, deviceID, stored)

	res.Timezone = stored

	return res, nil
}

// publishTimezoneUpdated announces a stored preference. The write already succeeded, so a
// publish failure is only logged.
func (s *serviceImpl) publishTimezoneUpdated(ctx context.Context, deviceID, tz string) {
	err := s.events.Publish(ctx, s.topic, kafka.Message{
		Key: deviceID,
		Value: dto.TimezoneUpdatedEvent{
			DeviceID:  deviceID,
			Timezone:  tz,
			UpdatedAt: s.clock.Now().UTC(),
		},
	})
	if err != nil {
		log.Warn().Err(err).Str("device_id", deviceID).Msg("failed to publish timezone update")
	}
}

func (s *serviceImpl) FormatDate(ctx context.Context, deviceID string, req dto.FormatDateRequest) (res dto.FormatDateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FormatDate")
	defer scope.End()

	if deviceID == "" {
		return res, failure.MissingDeviceID
	}

	formatter := s.formatter.For(deviceID)

	res.Formatted = formatter.Format(ctx, req.Date, req.Format)
	res.Timezone = formatter.Timezone(ctx)

	scope.SetAttributes(map[string]any{
		"date":     req.Date,
		"format":   req.Format,
		"timezone": res.Timezone,
	})

	return res, nil
}
