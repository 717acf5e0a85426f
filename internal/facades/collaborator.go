package facades

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrCallReverted is returned when a collaborator reports a failed call.
var ErrCallReverted = errors.New("call reverted")

// invoke sends fields as a protobuf Struct to method and checks the "ok"
// flag of the reply. A reply without the flag counts as success.
func invoke(ctx context.Context, conn grpc.ClientConnInterface, method string, fields map[string]any) error {
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return err
	}

	reply := &structpb.Struct{}
	if err := conn.Invoke(ctx, method, req, reply); err != nil {
		return err
	}

	ok, found := reply.GetFields()["ok"]
	if !found || ok.GetBoolValue() {
		return nil
	}
	return fmt.Errorf("%s: %w: %s", method, ErrCallReverted, reply.GetFields()["reason"].GetStringValue())
}
