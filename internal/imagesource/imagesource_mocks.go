package imagesource

//go:generate moq -pkg mocks -out ./mocks/object_getter_mock.go . ObjectGetter
