package agent

import "reminder-ai/pkg/gemini"

// SystemPrompt steers the model toward reminder function calls.
const SystemPrompt = `You are an advanced AI assistant that helps users manage their reminders and tasks.
You can create reminders, list existing reminders, mark reminders as completed, and delete reminders.

When a user wants to create a reminder, extract the task and date from their message.
If they don't specify a date, ask for one.
If they don't specify a priority, assume "normal".

IMPORTANT: Always use the appropriate function call when the user wants to:
- Create a reminder (use add_reminder)
- List reminders (use get_reminders)
- Complete a reminder (use complete_reminder)
- Delete a reminder (use delete_reminder)
- See upcoming reminders (use get_upcoming_reminders)

Be helpful, concise, and friendly in your responses.`

// SystemPromptAck is the model-role turn that follows the system prompt in the
// conversation context.
const SystemPromptAck = `I understand. I'll help with reminders and tasks.`

// GeneralSystemPrompt is used on the tools-free chat path.
const GeneralSystemPrompt = `You are an advanced AI assistant that can help with a wide range of topics.
You can provide information, answer questions, have casual conversations, and assist with various tasks.

You should be:
- Helpful and informative: Provide accurate, factual information and useful responses
- Conversational and engaging: Maintain a natural, friendly tone
- Concise: Keep responses clear and to the point
- Respectful: Be polite and considerate in all interactions

If the user asks about reminders or tasks, suggest they use the reminder-specific features of the application.`

// Tools returns the function declarations advertised to the model on the
// reminder path.
func Tools() []gemini.Tool {
	return []gemini.Tool{
		{
			FunctionDeclarations: []gemini.FunctionDeclaration{
				{
					Name:        string(OperationAddReminder),
					Description: "Add a new reminder with a date, priority, and optional tags",
					Parameters: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"message": map[string]interface{}{
								"type":        "string",
								"description": "The reminder message content",
							},
							"date": map[string]interface{}{
								"type":        "string",
								"description": "The date for the reminder (can be a specific date like '2023-12-25' or relative like 'tomorrow', 'next week', 'April 15')",
							},
							"priority": map[string]interface{}{
								"type":        "string",
								"enum":        []string{"low", "normal", "medium", "high"},
								"description": "The priority level of the reminder",
							},
							"tags": map[string]interface{}{
								"type":        "array",
								"items":       map[string]interface{}{"type": "string"},
								"description": "Optional tags to categorize the reminder",
							},
						},
						"required": []string{"message", "date"},
					},
				},
				{
					Name:        string(OperationGetReminders),
					Description: "Get all reminders, optionally filtered by date",
					Parameters: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"date": map[string]interface{}{
								"type":        "string",
								"description": "Optional date filter (e.g., 'today', 'tomorrow', '2023-12-25')",
							},
							"completed": map[string]interface{}{
								"type":        "boolean",
								"description": "Whether to show completed reminders (default: false)",
							},
						},
					},
				},
				{
					Name:        string(OperationCompleteReminder),
					Description: "Mark a reminder as completed",
					Parameters: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"reminder_id": map[string]interface{}{
								"type":        "integer",
								"description": "The ID of the reminder to mark as completed",
							},
						},
						"required": []string{"reminder_id"},
					},
				},
				{
					Name:        string(OperationDeleteReminder),
					Description: "Delete a reminder",
					Parameters: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"reminder_id": map[string]interface{}{
								"type":        "integer",
								"description": "The ID of the reminder to delete",
							},
						},
						"required": []string{"reminder_id"},
					},
				},
				{
					Name:        string(OperationGetUpcomingReminders),
					Description: "Get reminders for today and tomorrow",
					Parameters: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"dummy": map[string]interface{}{
								"type":        "string",
								"description": "This parameter is not used but is required for the API",
							},
						},
					},
				},
			},
		},
	}
}
