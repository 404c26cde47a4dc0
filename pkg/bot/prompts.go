package bot

import "fmt"

// Fixed user-facing strings. Changing any of these changes the bot's
// external contract, so they live in one place.
const (
	MsgCheckDMs       = "Please check your direct messages!"
	MsgNoChatID       = "Sorry, I couldn't fetch the chat ID. Please try again later."
	MsgNoDoseCard     = "Sorry, I couldn't fetch the dose card. Please try again later."
	MsgSomethingWrong = "Sorry, something went wrong. Please try again later."
	MsgAlreadySubbed  = "You're already subscribed! Thank you for your support."
)

const (
	trialEndedDM = "Hi there, friend!\n\nYour trial has ended.\n\nSupport the devs today, for only $12.40 per YEAR!  ૮₍ ˶ᵔ ᵕᵔ˶₎ა  >[Subscribe Now](%s)<"
	subscribeDM  = "Hi there, friend!\n\nThank you for choosing to support the devs of PsyAI, for only $12.40 per YEAR!  ૮₍ ˶ᵔ ᵕᵔ˶₎ა  >[Subscribe Now](%s)<"
)

// askPrompt wraps the raw user question with the instructional framing the
// brain backend expects. The framing is part of the backend contract; do not
// reword it.
const askPrompt = "Check your context, and find out: %s\n\n(Please respond conversationally to the query. If additional relevant details are available, incorporate that information naturally into your response without directly mentioning the source. If the available information does not fully address the query, feel free to rely on your own knowledge to provide a helpful, friendly response within 30000 characters.)"

func buildAskPrompt(query string) string {
	return fmt.Sprintf(askPrompt, query)
}

// drugInfoCard is the example card the /info prompt asks the backend to
// imitate. Same contract caveat as askPrompt, typos included.
const drugInfoCard = `
[Gabapentin](https://psychonautwiki.org/w/index.php?search=Gabapentin&title=Special%3ASearch&go=Go) drug information

🔭 *Class*
* ✴️ *Chemical* ➡️ **Gabapentinoids**
* ✴️ *Psychoactive* ➡️ **Depressant**

⚖️ *Dosages*
* ✴️ **ORAL** ✴️
  - *Threshold*: 200mg
  - *Light*: 200 - 600mg
  - *Common*: 600 - 900mg
  - *Strong*: 900 - 1200mg
  - *Heavy*: 1200mg

⏱️ *Duration*
* ✴️ *ORAL* ✴️
  - *Onset*: 30 - 90 minutes
  - *Total*: 5 - 8 hours

⚠️ *Addiction Potential* ⚠️
* No addiction potential information.

🧠 *Subjective Effects* 🧠
  - **Focus enhancement**
  - **Euphoria**

📈 *Tolerance*
  - *Full*: with prolonged continuous usage
  - *Baseline*: 7-14 days
`

const infoPrompt = "Generate a drug information card for %s. Respond only with the card. Use the provided example and follow the exact syntax given.\n\n Example drug information card for Gabapentin:\n\n%s\n\nNotes 1. Even though the dosage information in the example card (for Gabapentin) relates to one particular route of administration (ORAL), the information provided by the context for %s might pertain to a different route of administration (for example, 'IV' instead of 'ORAL'). Check the context for dosing ranges and units related to the route of administration of %s. If there is a scarcity of data about %s, obtain this information from anecdotal reports, if they are in your context, or from wherever possible. \n\n2. Not every section from the example dose card is required, and you may add additional sections if needed. Please keep the formatting compact and uniform using HTML.\n\n3. If a dose card for GBL or Gamma-Butyrolactone is requested, the 'threhsold' dose should be 0.3ml, the 'light' dose should start at 0.5ml, the onset should be 3-10 min, and the duration should be 1-2 hours."

func buildInfoPrompt(substanceName string) string {
	return fmt.Sprintf(infoPrompt, substanceName, drugInfoCard, substanceName, substanceName, substanceName)
}
