package records

import (
	"slices"

	"github.com/google/uuid"
)

// Task is a to-do item. Durations are in minutes.
type Task struct {
	ID                uuid.UUID    `json:"id"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	Category          TaskCategory `json:"category"`
	Priority          TaskPriority `json:"priority"`
	Status            TaskStatus   `json:"status"`
	DueDate           *Time        `json:"dueDate,omitempty"`
	EstimatedDuration int          `json:"estimatedDuration"`
	ActualDuration    *int         `json:"actualDuration,omitempty"`
	ClientName        *string      `json:"clientName,omitempty"`
	ProjectName       *string      `json:"projectName,omitempty"`
	Location          *string      `json:"location,omitempty"`
	Equipment         []string     `json:"equipment"`
	Team              []string     `json:"team"`
	Notes             string       `json:"notes"`
	Tags              []string     `json:"tags"`
	CreatedDate       Time         `json:"createdDate"`
	CompletedDate     *Time        `json:"completedDate,omitempty"`
}

// NewTask returns a pending task with a fresh ID and default values.
func NewTask() Task {
	return Task{
		ID:                uuid.New(),
		Category:          TaskShooting,
		Priority:          TaskPriorityMedium,
		Status:            TaskPending,
		EstimatedDuration: 60,
		Equipment:         []string{},
		Team:              []string{},
		Tags:              []string{},
		CreatedDate:       Now(),
	}
}

func (t Task) RecordID() uuid.UUID { return t.ID }

type TaskCategory string

const (
	TaskShooting   TaskCategory = "Shooting"
	TaskEditing    TaskCategory = "Editing"
	TaskClientWork TaskCategory = "Client Work"
	TaskMarketing  TaskCategory = "Marketing"
	TaskEquipment  TaskCategory = "Equipment"
	TaskBusiness   TaskCategory = "Business"
	TaskPersonal   TaskCategory = "Personal"
	TaskLearning   TaskCategory = "Learning"
	TaskNetworking TaskCategory = "Networking"
	TaskOther      TaskCategory = "Other"
)

func TaskCategoryValues() []TaskCategory {
	return []TaskCategory{
		TaskShooting, TaskEditing, TaskClientWork, TaskMarketing, TaskEquipment,
		TaskBusiness, TaskPersonal, TaskLearning, TaskNetworking, TaskOther,
	}
}

func (c TaskCategory) Valid() bool { return slices.Contains(TaskCategoryValues(), c) }

func (c *TaskCategory) UnmarshalText(text []byte) error {
	v, err := parseLabel("task category", TaskCategoryValues(), text)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
	TaskPriorityUrgent TaskPriority = "Urgent"
)

func TaskPriorityValues() []TaskPriority {
	return []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent}
}

func (p TaskPriority) Valid() bool { return slices.Contains(TaskPriorityValues(), p) }

func (p *TaskPriority) UnmarshalText(text []byte) error {
	v, err := parseLabel("task priority", TaskPriorityValues(), text)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
	TaskCancelled  TaskStatus = "Cancelled"
	TaskOnHold     TaskStatus = "On Hold"
)

func TaskStatusValues() []TaskStatus {
	return []TaskStatus{TaskPending, TaskInProgress, TaskCompleted, TaskCancelled, TaskOnHold}
}

func (s TaskStatus) Valid() bool { return slices.Contains(TaskStatusValues(), s) }

func (s *TaskStatus) UnmarshalText(text []byte) error {
	v, err := parseLabel("task status", TaskStatusValues(), text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
