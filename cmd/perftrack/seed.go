package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"performance-tracker-backend/internal/logger"
	"performance-tracker-backend/internal/repository"
	"performance-tracker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML layout read by `perftrack seed`. Tasks and ratings refer to
// members and tasks by their key.
type seedFile struct {
	Members []seedMember `yaml:"members"`
	Tasks   []seedTask   `yaml:"tasks"`
	Ratings []seedRating `yaml:"ratings"`
}

type seedMember struct {
	Key     string `yaml:"key"`
	Name    string `yaml:"name"`
	Role    string `yaml:"role"`
	Contact string `yaml:"contact"`
}

type seedSubtask struct {
	Title     string `yaml:"title"`
	Completed bool   `yaml:"completed"`
}

type seedTask struct {
	Key         string        `yaml:"key"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	StartDate   time.Time     `yaml:"start_date"`
	EndDate     time.Time     `yaml:"end_date"`
	Status      string        `yaml:"status"`
	Assigned    []string      `yaml:"assigned"`
	Subtasks    []seedSubtask `yaml:"subtasks"`
}

type seedRating struct {
	Task          string    `yaml:"task"`
	Member        string    `yaml:"member"`
	Quality       int       `yaml:"quality"`
	Timeliness    int       `yaml:"timeliness"`
	Communication int       `yaml:"communication"`
	Initiative    int       `yaml:"initiative"`
	Comments      string    `yaml:"comments"`
	Mode          string    `yaml:"mode"`
	Timestamp     time.Time `yaml:"timestamp"`
}

type seedResult struct {
	Members int
	Tasks   int
	Ratings int
}

func newSeedCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load members, tasks and ratings from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			seed, err := parseSeed(f)
			if err != nil {
				return err
			}

			db, err := a.database()
			if err != nil {
				return err
			}
			v := validator.New()
			memberRepo := repository.NewMemberRepository(db)
			taskRepo := repository.NewTaskRepository(db)
			ratingRepo := repository.NewRatingRepository(db)

			result, err := applySeed(seed,
				service.NewMemberService(memberRepo, nil, v),
				service.NewTaskService(taskRepo, memberRepo, nil, v),
				service.NewRatingService(ratingRepo, taskRepo, memberRepo, nil, v),
			)
			if err != nil {
				return err
			}

			logger.WithComponent("seed").WithFields(map[string]interface{}{
				"members": result.Members,
				"tasks":   result.Tasks,
				"ratings": result.Ratings,
			}).Info("Seed loaded")
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d members, %d tasks, %d ratings\n", result.Members, result.Tasks, result.Ratings)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "seed.yaml", "YAML seed file")
	return cmd
}

func parseSeed(r io.Reader) (*seedFile, error) {
	var seed seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &seed, nil
}

// applySeed creates everything through the services so the usual validation applies.
// It stops at the first failure; rows created before it are kept.
func applySeed(seed *seedFile, members service.MemberServiceInterface, tasks service.TaskServiceInterface, ratings service.RatingServiceInterface) (seedResult, error) {
	var result seedResult
	memberIDs := make(map[string]uuid.UUID, len(seed.Members))
	taskIDs := make(map[string]uuid.UUID, len(seed.Tasks))

	for _, m := range seed.Members {
		created, err := members.CreateMember(&service.CreateMemberRequest{Name: m.Name, Role: m.Role, Contact: m.Contact})
		if err != nil {
			return result, fmt.Errorf("member %q: %w", m.Key, err)
		}
		memberIDs[m.Key] = created.ID
		result.Members++
	}

	for _, t := range seed.Tasks {
		assigned := make([]uuid.UUID, 0, len(t.Assigned))
		for _, key := range t.Assigned {
			id, ok := memberIDs[key]
			if !ok {
				return result, fmt.Errorf("task %q: unknown member %q", t.Key, key)
			}
			assigned = append(assigned, id)
		}
		titles := make([]string, len(t.Subtasks))
		for i, s := range t.Subtasks {
			titles[i] = s.Title
		}

		created, err := tasks.CreateTask(&service.CreateTaskRequest{
			Title:           t.Title,
			Description:     t.Description,
			StartDate:       t.StartDate,
			EndDate:         t.EndDate,
			Status:          t.Status,
			AssignedMembers: assigned,
			Subtasks:        titles,
		})
		if err != nil {
			return result, fmt.Errorf("task %q: %w", t.Key, err)
		}
		taskIDs[t.Key] = created.ID
		result.Tasks++

		for i, s := range t.Subtasks {
			if !s.Completed || i >= len(created.Subtasks) {
				continue
			}
			if _, err := tasks.ToggleSubtask(created.ID, created.Subtasks[i].ID); err != nil {
				return result, fmt.Errorf("task %q subtask %q: %w", t.Key, s.Title, err)
			}
		}
	}

	for i, r := range seed.Ratings {
		taskID, ok := taskIDs[r.Task]
		if !ok {
			return result, fmt.Errorf("rating %d: unknown task %q", i, r.Task)
		}
		memberID, ok := memberIDs[r.Member]
		if !ok {
			return result, fmt.Errorf("rating %d: unknown member %q", i, r.Member)
		}

		req := &service.CreateRatingRequest{
			TaskID:   taskID,
			MemberID: memberID,
			Dimensions: service.RatingDimensionsRequest{
				Quality:       r.Quality,
				Timeliness:    r.Timeliness,
				Communication: r.Communication,
				Initiative:    r.Initiative,
			},
			Comments: r.Comments,
			Mode:     r.Mode,
		}
		if !r.Timestamp.IsZero() {
			ts := r.Timestamp
			req.Timestamp = &ts
		}
		if _, err := ratings.CreateRating(req); err != nil {
			return result, fmt.Errorf("rating %d: %w", i, err)
		}
		result.Ratings++
	}

	return result, nil
}
