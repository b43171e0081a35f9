package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/stemsi/quizforge/internal/response"
)

// resource describes the five CRUD verbs of one entity. A non-empty parent
// makes list take the parent's id.
type resource struct {
	name   string
	short  string
	parent string

	list   func(ctx context.Context, h *handlers, parentID string) response.Response
	get    func(ctx context.Context, h *handlers, id string) response.Response
	create func(ctx context.Context, h *handlers, payload []byte) response.Response
	update func(ctx context.Context, h *handlers, id string, payload []byte) response.Response
	remove func(ctx context.Context, h *handlers, id string) response.Response
}

var resources = []resource{
	{
		name:  "subject",
		short: "Manage subjects",
		list: func(ctx context.Context, h *handlers, _ string) response.Response {
			return h.subjects.List(ctx)
		},
		get: func(ctx context.Context, h *handlers, id string) response.Response {
			return h.subjects.Get(ctx, id)
		},
		create: func(ctx context.Context, h *handlers, payload []byte) response.Response {
			return h.subjects.Create(ctx, payload)
		},
		update: func(ctx context.Context, h *handlers, id string, payload []byte) response.Response {
			return h.subjects.Update(ctx, id, payload)
		},
		remove: func(ctx context.Context, h *handlers, id string) response.Response {
			return h.subjects.Delete(ctx, id)
		},
	},
	{
		name:   "topic",
		short:  "Manage topics of a subject",
		parent: "subject",
		list: func(ctx context.Context, h *handlers, parentID string) response.Response {
			return h.topics.List(ctx, parentID)
		},
		get: func(ctx context.Context, h *handlers, id string) response.Response {
			return h.topics.Get(ctx, id)
		},
		create: func(ctx context.Context, h *handlers, payload []byte) response.Response {
			return h.topics.Create(ctx, payload)
		},
		update: func(ctx context.Context, h *handlers, id string, payload []byte) response.Response {
			return h.topics.Update(ctx, id, payload)
		},
		remove: func(ctx context.Context, h *handlers, id string) response.Response {
			return h.topics.Delete(ctx, id)
		},
	},
	{
		name:   "question",
		short:  "Manage questions of a topic",
		parent: "topic",
		list: func(ctx context.Context, h *handlers, parentID string) response.Response {
			return h.questions.List(ctx, parentID)
		},
		get: func(ctx context.Context, h *handlers, id string) response.Response {
			return h.questions.Get(ctx, id)
		},
		create: func(ctx context.Context, h *handlers, payload []byte) response.Response {
			return h.questions.Create(ctx, payload)
		},
		update: func(ctx context.Context, h *handlers, id string, payload []byte) response.Response {
			return h.questions.Update(ctx, id, payload)
		},
		remove: func(ctx context.Context, h *handlers, id string) response.Response {
			return h.questions.Delete(ctx, id)
		},
	},
	{
		name:   "quiz",
		short:  "Manage quizzes of a topic",
		parent: "topic",
		list: func(ctx context.Context, h *handlers, parentID string) response.Response {
			return h.quizzes.List(ctx, parentID)
		},
		get: func(ctx context.Context, h *handlers, id string) response.Response {
			return h.quizzes.Get(ctx, id)
		},
		create: func(ctx context.Context, h *handlers, payload []byte) response.Response {
			return h.quizzes.Create(ctx, payload)
		},
		update: func(ctx context.Context, h *handlers, id string, payload []byte) response.Response {
			return h.quizzes.Update(ctx, id, payload)
		},
		remove: func(ctx context.Context, h *handlers, id string) response.Response {
			return h.quizzes.Delete(ctx, id)
		},
	},
	{
		name:   "exam",
		short:  "Manage topic-weighted exams of a subject",
		parent: "subject",
		list: func(ctx context.Context, h *handlers, parentID string) response.Response {
			return h.exams.List(ctx, parentID)
		},
		get: func(ctx context.Context, h *handlers, id string) response.Response {
			return h.exams.Get(ctx, id)
		},
		create: func(ctx context.Context, h *handlers, payload []byte) response.Response {
			return h.exams.Create(ctx, payload)
		},
		update: func(ctx context.Context, h *handlers, id string, payload []byte) response.Response {
			return h.exams.Update(ctx, id, payload)
		},
		remove: func(ctx context.Context, h *handlers, id string) response.Response {
			return h.exams.Delete(ctx, id)
		},
	},
}

func (a *app) resourceCmd(r resource) *cobra.Command {
	cmd := &cobra.Command{
		Use:   r.name,
		Short: r.short,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List " + r.name + "s",
		Args:  cobra.NoArgs,
		RunE: a.withStorage(func(cmd *cobra.Command, h *handlers, args []string) error {
			var parentID string
			if len(args) > 0 {
				parentID = args[0]
			}
			return emit(cmd, r.list(cmd.Context(), h, parentID))
		}),
	}
	if r.parent != "" {
		listCmd.Use = "list <" + r.parent + "-id>"
		listCmd.Short = "List the " + r.name + "s of a " + r.parent
		listCmd.Args = cobra.ExactArgs(1)
	}

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one " + r.name,
		Args:  cobra.ExactArgs(1),
		RunE: a.withStorage(func(cmd *cobra.Command, h *handlers, args []string) error {
			return emit(cmd, r.get(cmd.Context(), h, args[0]))
		}),
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a " + r.name + " from a JSON payload",
		Args:  cobra.NoArgs,
		RunE: a.withStorage(func(cmd *cobra.Command, h *handlers, args []string) error {
			payload, err := readPayload(cmd)
			if err != nil {
				return err
			}
			return emit(cmd, r.create(cmd.Context(), h, payload))
		}),
	}
	addPayloadFlags(createCmd)

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a " + r.name + " from a JSON payload",
		Args:  cobra.ExactArgs(1),
		RunE: a.withStorage(func(cmd *cobra.Command, h *handlers, args []string) error {
			payload, err := readPayload(cmd)
			if err != nil {
				return err
			}
			return emit(cmd, r.update(cmd.Context(), h, args[0], payload))
		}),
	}
	addPayloadFlags(updateCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + r.name + " and everything under it",
		Args:  cobra.ExactArgs(1),
		RunE: a.withStorage(func(cmd *cobra.Command, h *handlers, args []string) error {
			return emit(cmd, r.remove(cmd.Context(), h, args[0]))
		}),
	}

	cmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd)
	return cmd
}
