package pos

import (
	"context"

	"github.com/MarcGrol/cloverconnect/lib/mylog"
	"github.com/MarcGrol/cloverconnect/lib/mytime"
	"github.com/MarcGrol/cloverconnect/lib/myuuid"
	"github.com/MarcGrol/cloverconnect/services/pos/posclient"
	"github.com/MarcGrol/cloverconnect/services/posapi"
)

type TransactionRecorder interface {
	Record(c context.Context, tx posapi.Transaction)
}

type service struct {
	posClient    posclient.PosClient
	transactions TransactionRecorder
	nower        mytime.Nower
	uuider       myuuid.UUIDer
	logger       mylog.Logger
}

func newService(posClient posclient.PosClient, transactions TransactionRecorder, nower mytime.Nower, uuider myuuid.UUIDer) *service {
	return &service{
		posClient:    posClient,
		transactions: transactions,
		nower:        nower,
		uuider:       uuider,
		logger:       mylog.New("pos"),
	}
}
