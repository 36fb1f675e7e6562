package publisher

//go:generate moq -pkg mocks -out ./mocks/nats_connection_mock.go . NatsConnection
