package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kilianp07/replenish/config"
	coremetrics "github.com/kilianp07/replenish/core/metrics"
	"github.com/kilianp07/replenish/core/model"
	"github.com/kilianp07/replenish/core/solve"
	"github.com/kilianp07/replenish/infra/logger"
	"github.com/kilianp07/replenish/infra/metrics"
	"github.com/kilianp07/replenish/internal/eventbus"
)

// Service orchestrates one optimization run: it wires the solver to the
// metrics sinks, reconstructs the optimal schedule and compares it to the
// greedy baseline.
type Service struct {
	cfg      *config.Config
	log      logger.Logger
	sink     coremetrics.MetricsSink
	bus      *eventbus.Bus
	results  *eventbus.TypedBus[coremetrics.SolveResult]
	promAddr string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	zerolog.SetGlobalLevel(cfg.Logging.ZerologLevel())
	logg := logger.New("service")

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	return &Service{
		cfg:      cfg,
		log:      logg,
		sink:     sink,
		bus:      eventbus.New(),
		results:  eventbus.NewTyped[coremetrics.SolveResult](),
		promAddr: cfg.Metrics.PrometheusAddr,
	}, nil
}

// Run executes the solve and blocks until the schedule is reported and the
// result recorded, or the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	metrics.StartEventCollector(ctx, s.bus, s.sink)
	if s.promAddr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	sub := s.results.Subscribe()
	var wg sync.WaitGroup
	wg.Add(1)
	go s.recordResults(sub, &wg)

	err := s.solve(ctx)
	s.results.Close()
	wg.Wait()
	return err
}

// recordResults drains the typed result bus into the configured sink.
func (s *Service) recordResults(sub <-chan coremetrics.SolveResult, wg *sync.WaitGroup) {
	defer wg.Done()
	for res := range sub {
		if err := s.sink.RecordSolveResult([]coremetrics.SolveResult{res}); err != nil {
			s.log.Errorf("record solve result: %v", err)
		}
	}
}

func (s *Service) solve(ctx context.Context) error {
	prob := s.cfg.Problem.ToModel()
	costs := s.cfg.Costs.ToModel()

	solver, err := solve.New(prob, costs, solve.Options{
		Bound:         s.cfg.Solver.Bound(),
		Workers:       s.cfg.Solver.Workers,
		MaxTableCells: s.cfg.Solver.MaxTableCells,
		MaxStates:     s.cfg.Solver.MaxStates,
		Logger:        s.log,
		Bus:           s.bus,
	})
	if err != nil {
		return fmt.Errorf("solver: %w", err)
	}

	start := time.Now()
	sol, err := solver.Solve(ctx)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	elapsed := time.Since(start)

	sched, err := sol.Schedule()
	if err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	s.logSchedule(sched, sol.TotalCost())

	result := coremetrics.SolveResult{
		SolveID:     uuid.NewString(),
		Horizon:     prob.Horizon,
		LeadTime:    prob.LeadTime,
		MaxStorage:  prob.MaxStorage,
		BoundPolicy: s.cfg.Solver.Bound().String(),
		States:      sol.States(),
		OptimalCost: sol.TotalCost(),
		Duration:    elapsed,
		Time:        start,
	}

	if !s.cfg.Solver.DisableGreedy && prob.LeadTime == 0 {
		_, greedyTotal, gerr := solve.Greedy(prob, costs)
		if gerr != nil {
			return fmt.Errorf("greedy baseline: %w", gerr)
		}
		result.GreedyCost = greedyTotal
		result.GreedyComputed = true
		s.log.Infof("baseline comparison: optimal=%.2f greedy=%.2f savings=%.2f",
			sol.TotalCost(), greedyTotal, greedyTotal-sol.TotalCost())
	}

	s.results.Publish(result)
	return nil
}

func (s *Service) logSchedule(sched model.Schedule, total float64) {
	for _, r := range sched {
		s.log.Infof("period %d: start=%d arriving=%d order=%d demand=%d emergency=%d end=%d cost=%.2f",
			r.Period, r.StartInventory, r.Arriving, r.Order, r.Demand, r.EmergencyQty, r.EndInventory, r.PeriodCost)
	}
	s.log.Infof("optimal plan: %d periods, ordered=%d, emergency=%d, total cost=%.2f",
		len(sched), sched.TotalOrdered(), sched.TotalEmergency(), total)
}

// Close releases the event buses held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	s.results.Close()
	return nil
}
