package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"time"
	"zeit/infras/clock"
	"zeit/infras/otel"
	"zeit/infras/tzdb"
	"zeit/internal/domains/worldtime/model"
	"zeit/internal/domains/worldtime/model/dto"
	"zeit/shared/constant"
	"zeit/shared/timefmt"
)

// WorldTime answers the two timezone queries. Both operations are pure
// synchronous computations over the injected clock and zone database; there
// is no shared mutable state, so the service is safe for concurrent callers.
type WorldTime interface {
	CurrentTime(ctx context.Context, req dto.CurrentTimeRequest) (dto.CurrentTimeResponse, error)
	Convert(ctx context.Context, req dto.ConvertTimeRequest) (dto.ConvertTimeResponse, error)
}

type serviceImpl struct {
	clock clock.Clock
	zones tzdb.ZoneDB
	otel  otel.Otel
}

func New(clock clock.Clock, zones tzdb.ZoneDB, otel otel.Otel) WorldTime {
	return &serviceImpl{
		clock: clock,
		zones: zones,
		otel:  otel,
	}
}

// CurrentTime returns the current wall-clock time in the requested zone.
// An empty timezone resolves to UTC. The DST flag comes from the zone
// database's transition data, not from an offset heuristic.
func (s *serviceImpl) CurrentTime(ctx context.Context, req dto.CurrentTimeRequest) (res dto.CurrentTimeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CurrentTime")
	defer scope.End()
	defer scope.TraceIfError(err)

	zone := model.UTCZone()
	if req.Timezone != "" {
		zone, err = resolveZone(s.zones, req.Timezone)
		if err != nil {
			return res, err
		}
	}

	now := s.clock.Now().In(zone.Location())
	_, offset := now.Zone()

	res = dto.CurrentTimeResponse{
		Timezone:  zone.Name(),
		Datetime:  timefmt.Timestamp(now),
		UTCOffset: timefmt.UTCOffset(offset),
		IsDST:     now.IsDST(),
	}

	return res, nil
}

// Convert re-expresses a wall-clock time from the source zone in the target
// zone, anchored to today's date in the source zone. The source zone is
// validated before the target; the first failure short-circuits.
func (s *serviceImpl) Convert(ctx context.Context, req dto.ConvertTimeRequest) (res dto.ConvertTimeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Convert")
	defer scope.End()
	defer scope.TraceIfError(err)

	source, err := resolveZone(s.zones, req.SourceTimezone)
	if err != nil {
		return res, err
	}

	target, err := resolveZone(s.zones, req.TargetTimezone)
	if err != nil {
		return res, err
	}

	wall, err := parseWallClock(req.Time)
	if err != nil {
		return res, err
	}

	// The anchor date is today in the source zone, not UTC.
	today := s.clock.Now().In(source.Location())
	year, month, day := today.Date()

	sourceTime := time.Date(year, month, day, wall.Hour, wall.Minute, 0, 0, source.Location())

	// time.Date normalizes civil times that fall in a spring-forward gap,
	// so a shifted wall clock means the requested time does not exist in
	// the source zone. Times repeated by a fall-back transition are mapped
	// to whichever offset the zone lookup selects, deterministically.
	if sourceTime.Hour() != wall.Hour || sourceTime.Minute() != wall.Minute {
		return res, model.NonexistentCivilTime(wall.String(), req.SourceTimezone)
	}

	targetTime := sourceTime.In(target.Location())

	_, sourceOffset := sourceTime.Zone()
	_, targetOffset := targetTime.Zone()

	res = dto.ConvertTimeResponse{
		Source: dto.ZoneTimeEntry{
			Timezone:  source.Name(),
			Datetime:  timefmt.Timestamp(sourceTime),
			UTCOffset: timefmt.UTCOffset(sourceOffset),
		},
		Target: dto.ZoneTimeEntry{
			Timezone:  target.Name(),
			Datetime:  timefmt.Timestamp(targetTime),
			UTCOffset: timefmt.UTCOffset(targetOffset),
		},
		TimeDifference: timefmt.OffsetDiff(targetOffset - sourceOffset),
	}

	return res, nil
}
