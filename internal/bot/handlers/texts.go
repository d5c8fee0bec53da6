package handlers

// Reply texts. Data is stored as plain CSV/TXT, which the help text warns
// about explicitly.
const (
	helpText = `Commands:
/menu - show menu buttons
/help - show this help
/addmed <name> - add medication button
/addgb <value> [date time] [@note] - add glucose before meal
/addga <value> [date time] [@note] - add glucose after meal

Date/time examples:
- 2/1 9:05
- 02/01 09:05
- 24/2/1 9:05
- 2024/2/1 9:05
If year is omitted, current year is used.
Note example: @before breakfast

Warning: data is stored as plain text CSV/TXT and is not encrypted by this bot.`

	menuText = `Diary menu:
- Glucose before meal
- Glucose after meal
- Weight
- Medications
Use /addmed <name> to add medication button.
Use /addgb or /addga for direct glucose entry with optional date/time.`

	glucoseUsageText = "Usage:\n/addgb <value> [MM/DD hh:mm] [@note]\n/addga <value> [MM/DD hh:mm] [@note]"
	addMedUsageText  = "Usage: /addmed <medication name>"

	glucoseBeforePrompt = "Enter glucose: <value> [date time] [@note], e.g. 5.8 2/1 9:05 @before breakfast"
	glucoseAfterPrompt  = "Enter glucose: <value> [date time] [@note], e.g. 7.2 2/1 11:00 @after lunch"
	weightPrompt        = "Enter weight value (kg), for example: 78.4"

	savedText        = "Saved ✅"
	glucoseSavedText = "Glucose entry saved ✅"

	unknownMedicationText = "Unknown medication. Use /addmed <name> first."
	fallbackText          = "Choose an action from menu. Type /menu to show buttons or /addmed <name>."
)
