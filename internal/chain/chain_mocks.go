package chain

// from client.go
//go:generate moq -pkg mocks -out ./mocks/backend_mock.go . Backend

// from waiter.go
//go:generate moq -pkg mocks -out ./mocks/receipt_fetcher_mock.go . ReceiptFetcher
