// Package mock provides a test double implementation of ai.Responder.
//
// The mock lets tests exercise the remote-generation path without a
// network dependency, with controlled, deterministic behavior:
//
//	responder := mock.NewMockResponder()
//	responder.ReplyFunc = func(ctx context.Context, system, user string, maxTokens int) (string, error) {
//	    return "resposta fixa", nil
//	}
package mock
