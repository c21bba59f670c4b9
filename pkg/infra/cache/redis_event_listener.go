package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustTag/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

const reconnectDelay = time.Second

type eventHandler func(ctx context.Context, payload json.RawMessage) error

type redisEventListener struct {
	logger   *logrus.Logger
	cache    Client
	handlers map[string][]eventHandler
}

func NewRedisEventListener(logger *logrus.Logger, cache Client) EventListener {
	return &redisEventListener{
		logger:   logger,
		cache:    cache,
		handlers: make(map[string][]eventHandler),
	}
}

// RegisterEventSubscriber routes envelopes whose type matches T to subscriber.
func RegisterEventSubscriber[T event.Event](l EventListener, subscriber EventSubscriber[T]) {
	var zero T
	l.register(zero.Type(), func(ctx context.Context, payload json.RawMessage) error {
		var ev T
		if err := json.Unmarshal(payload, &ev); err != nil {
			return fmt.Errorf("decode %s: %w", zero.Type(), err)
		}
		return subscriber.OnEvent(ctx, ev)
	})
}

func (r *redisEventListener) register(eventType string, handler eventHandler) {
	r.handlers[eventType] = append(r.handlers[eventType], handler)
}

// Listen blocks until ctx is done, reconnecting when the subscription drops.
func (r *redisEventListener) Listen(ctx context.Context, channels ...Channel) {
	names := make([]string, 0, len(channels))
	for _, ch := range channels {
		names = append(names, string(ch))
	}

	for {
		r.listenOnce(ctx, names)
		if ctx.Err() != nil {
			r.logger.Info("redis pubsub listener shutting down")
			return
		}

		r.logger.Warn("redis pubsub disconnected, reconnecting")
		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (r *redisEventListener) listenOnce(ctx context.Context, names []string) {
	pubSub := r.cache.RedisClient().Subscribe(ctx, names...)
	defer func() { _ = pubSub.Close() }()

	r.logger.WithField("channels", names).Debug("redis pubsub connected")

	messages := pubSub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			r.handleMessage(ctx, msg.Payload)
		}
	}
}

func (r *redisEventListener) handleMessage(ctx context.Context, payload string) {
	var envelope RedisMessage
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		r.logger.WithError(err).Error("error decoding redis message")
		return
	}

	handlers, ok := r.handlers[envelope.Type]
	if !ok {
		r.logger.WithField("type", envelope.Type).Debug("no subscriber for event type")
		return
	}
	for _, h := range handlers {
		if err := h(ctx, envelope.Event); err != nil {
			r.logger.WithError(err).WithField("type", envelope.Type).Error("error executing event subscriber")
		}
	}
}
