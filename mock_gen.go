package mconstraint

//go:generate mockgen -destination=mock_host_test.go -package=mconstraint github.com/birdayz/mconstraint/scene Host
