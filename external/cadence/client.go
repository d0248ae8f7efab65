package cadence

import (
	"context"

	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/client"
	"go.uber.org/cadence/workflow"
	"go.uber.org/yarpc"
	"go.uber.org/yarpc/transport/tchannel"
)

const (
	ClientName     = "helpmate-worker"
	CadenceService = "cadence-frontend"
)

// CadenceClient wraps the cadence workflow client used to start and signal
// nudge workflows from the API and background jobs.
type CadenceClient struct {
	client client.Client
}

// BuildCadenceServiceClient dials the cadence frontend at hostPort over
// tchannel. Failing to set up the transport is fatal; the process is useless
// without it.
func BuildCadenceServiceClient(hostPort string) workflowserviceclient.Interface {
	transport, err := tchannel.NewChannelTransport(tchannel.ServiceName(ClientName))
	if err != nil {
		panic("Failed to setup tchannel")
	}

	dispatcher := yarpc.NewDispatcher(yarpc.Config{
		Name: ClientName,
		Outbounds: yarpc.Outbounds{
			CadenceService: {Unary: transport.NewSingleOutbound(hostPort)},
		},
	})
	if err := dispatcher.Start(); err != nil {
		panic("Failed to start dispatcher")
	}

	return workflowserviceclient.New(dispatcher.ClientConfig(CadenceService))
}

// NewClient builds a workflow client from the `cadence.conn` and
// `cadence.domain` configuration.
func NewClient() *CadenceClient {
	service := BuildCadenceServiceClient(viper.GetString("cadence.conn"))

	return &CadenceClient{
		client: client.NewClient(
			service,
			viper.GetString("cadence.domain"),
			&client.Options{
				MetricsScope:  tally.NoopScope,
				DataConverter: NewMsgPackDataConverter(),
			},
		),
	}
}

func (c *CadenceClient) StartWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflowFunc interface{}, args ...interface{}) (*workflow.Execution, error) {
	return c.client.StartWorkflow(ctx, options, workflowFunc, args...)
}

func (c *CadenceClient) SignalWithStartWorkflow(ctx context.Context,
	workflowID string, signalName string, signalArg interface{},
	options client.StartWorkflowOptions, workflowFunc interface{}, workflowArgs ...interface{}) (*workflow.Execution, error) {
	return c.client.SignalWithStartWorkflow(ctx, workflowID, signalName, signalArg, options, workflowFunc, workflowArgs...)
}
