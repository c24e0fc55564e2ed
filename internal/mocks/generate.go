package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Provider --dir ../domain/league --output domain/league --outpkg leaguemock --filename provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name League --dir ../domain/league --output domain/league --outpkg leaguemock --filename league_mock.go
