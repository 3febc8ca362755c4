package catalog

var defaultActivities = []Activity{
	{
		Key:   RaiseHand,
		Title: "Raise Hand",
		Why:   "Prevents blurting; teaches turn-taking signals",
		Steps: []string{"Look at teacher", "Raise one hand high", "Keep still", "Wait quietly"},
	},
	{
		Key:   StaySeated,
		Title: "Stay Seated",
		Why:   "Reduces wandering/fidgeting during lessons",
		Steps: []string{"Feet on floor", "Back against chair", "Hands on desk", "Eyes forward"},
	},
	{
		Key:   TakeTurns,
		Title: "Take Turns",
		Why:   "Builds sharing and patience",
		Steps: []string{"Watch friend's turn", "Wait for name", "Go when called", "Pass to next"},
	},
	{
		Key:   LineUp,
		Title: "Line Up",
		Why:   "Safe movement transitions",
		Steps: []string{"Stand behind friend", "Hands at sides", "Face forward", "Wait signal"},
	},
	{
		Key:   CleanDesk,
		Title: "Clean Desk",
		Why:   "End-of-task routines",
		Steps: []string{"Put papers in folder", "Pencils in case", "Trash in bin", "Wipe surface"},
	},
	{
		Key:   TransitionTasks,
		Title: "Transition Tasks",
		Why:   "Reduces anxiety between activities",
		Steps: []string{"Finish current work", "Put away materials", "Get next item", "Start new"},
	},
}
