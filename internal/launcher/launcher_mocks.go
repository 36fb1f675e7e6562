package launcher

// from pipeline.go
//go:generate moq -pkg mocks -out ./mocks/platform_client_mock.go . PlatformClient

// from pipeline.go
//go:generate moq -pkg mocks -out ./mocks/chain_client_mock.go . ChainClient

// from pipeline.go
//go:generate moq -pkg mocks -out ./mocks/receipt_waiter_mock.go . ReceiptWaiter

// from pipeline.go
//go:generate moq -pkg mocks -out ./mocks/image_source_mock.go . ImageSource

// from batch.go
//go:generate moq -pkg mocks -out ./mocks/launcher_mock.go . Launcher
