package nats

import (
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

func NewConnection(dsn string) (*nats.Conn, error) {
	nc, err := nats.Connect(dsn, nats.Name("streamcheck"))
	if err != nil {
		return nil, err
	}

	if err := nc.FlushTimeout(1 * time.Second); err != nil {
		nc.Close()
		return nil, errors.New("not connected")
	}

	return nc, nil
}

// JetStream bundles a connection with the JetStream context built on it so
// both can be closed together.
type JetStream struct {
	Conn *nats.Conn
	JS   jetstream.JetStream
}

func NewJetStream(url string) (*JetStream, error) {
	conn, err := NewConnection(url)
	if err != nil {
		return nil, err
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("create jetstream: %w", err)
	}

	return &JetStream{Conn: conn, JS: js}, nil
}

func (j *JetStream) Close() error {
	if err := j.Conn.Drain(); err != nil {
		j.Conn.Close()
		return err
	}
	return nil
}
