package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/experience --output domain/experience --outpkg experiencemock --filename repository_mock.go
