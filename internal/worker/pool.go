package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultMaxAttempts = 3
	popTimeout         = 5 * time.Second
)

// Handler processes one job payload. A returned error schedules a retry.
type Handler interface {
	Process(ctx context.Context, payload json.RawMessage) error
}

// Pool runs BRPOP workers over the notification queue.
type Pool struct {
	rdb         *redis.Client
	handlers    map[string]Handler
	maxAttempts int
	wg          sync.WaitGroup
}

func NewPool(rdb *redis.Client) *Pool {
	return &Pool{rdb: rdb, handlers: map[string]Handler{}, maxAttempts: DefaultMaxAttempts}
}

// Handle routes jobs of jobType to h. Register handlers before Start.
func (p *Pool) Handle(jobType string, h Handler) {
	p.handlers[jobType] = h
}

// Start launches numWorkers goroutines. Each blocks on BRPOP, so idle
// workers cost nothing; they stop when ctx is cancelled.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	if numWorkers < 1 {
		numWorkers = 1
	}
	for i := 0; i < numWorkers; i++ {
		p.wg.Add(1)
		go p.run(ctx, i)
	}
	log.Info().Int("workers", numWorkers).Msg("[worker][pool] started")
}

// Wait blocks until every worker has returned.
func (p *Pool) Wait() {
	p.wg.Wait()
}

func (p *Pool) run(ctx context.Context, id int) {
	defer p.wg.Done()
	for {
		if ctx.Err() != nil {
			log.Info().Int("worker", id).Msg("[worker][pool] shutting down")
			return
		}
		result, err := p.rdb.BRPop(ctx, popTimeout, QueueNotifications).Result()
		if err != nil {
			if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
				log.Warn().Err(err).Int("worker", id).Msg("[worker][pool] pop failed")
				time.Sleep(time.Second)
			}
			continue
		}
		if len(result) < 2 {
			continue
		}
		p.processJob(ctx, result[0], result[1])
	}
}

func (p *Pool) processJob(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("[worker][pool] failed to unmarshal job")
		return
	}
	h, ok := p.handlers[job.Type]
	if !ok {
		SendToDLQ(ctx, p.rdb, queue, job, "no handler for job type")
		return
	}

	err := h.Process(ctx, job.Payload)
	if err == nil {
		return
	}
	job.Attempts++
	if job.Attempts >= p.maxAttempts {
		SendToDLQ(ctx, p.rdb, queue, job, err.Error())
		return
	}
	log.Warn().Err(err).Str("type", job.Type).Int("attempts", job.Attempts).Msg("[worker][pool] job failed, requeued")
	if err := enqueue(ctx, p.rdb, queue, job.Type, job.Payload, job.Attempts); err != nil {
		log.Error().Err(err).Str("type", job.Type).Msg("[worker][pool] requeue failed")
	}
}
