// Package ticker implements spec.md §4.I's cooperative maintenance
// scheduler: the design notes call out that the source's scheduler is
// cooperative and "trivially mapped to an explicit ticker struct
// polled once per main-loop iteration", which is exactly what this
// package is. No goroutines, no real timers; virtual time advances
// only when the caller says it has.
package ticker

// Task is a periodically-due unit of work, measured in a caller-chosen
// unit of virtual work (spec.md's "cost_ratio" budget, not wall clock).
type Task struct {
	period     float64
	costRatio  float64
	costSoFar  float64
	action     func()
}

// NewTask creates a task due every period units of virtual time.
// costRatio is spec.md §4.I's "new_task(period, cost_ratio, action)"
// knob: CheckTask scales the raw cost it's given by costRatio before
// accumulating it, so two tasks sharing the same CheckAll call can
// still advance at different rates relative to the caller's notion of
// one unit of work (e.g. a task due every quarter-unit can be driven
// by a per-iteration cost of 1 without firing four times per call).
func NewTask(period, costRatio float64, action func()) *Task {
	return &Task{period: period, costRatio: costRatio, action: action}
}

// Ticker holds every scheduled maintenance Task; the saturation loop
// calls CheckAll once per complete1 iteration.
type Ticker struct {
	tasks []*Task
}

// New creates an empty Ticker.
func New() *Ticker { return &Ticker{} }

// Register adds a task to the ticker.
func (t *Ticker) Register(task *Task) { t.tasks = append(t.tasks, task) }

// CheckTask advances task by cost*costRatio units of virtual time and
// fires its action (possibly more than once) for every whole period
// elapsed.
func CheckTask(task *Task, cost float64) {
	task.costSoFar += cost * task.costRatio
	for task.costSoFar >= task.period {
		task.costSoFar -= task.period
		task.action()
	}
}

// CheckAll advances every registered task by cost units.
func (t *Ticker) CheckAll(cost float64) {
	for _, task := range t.tasks {
		CheckTask(task, cost)
	}
}
