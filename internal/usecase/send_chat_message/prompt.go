package send_chat_message

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
)

const systemPromptTemplate = `You are a knowledgeable AI assistant with expertise in multiple areas, with special focus on Sikkim monasteries and Buddhist culture. You can help users with:

**Primary Expertise - Sikkim & Buddhism:**
- All major monasteries in Sikkim (Rumtek, Pemayangtse, Enchey, Tashiding, Do-drul Chorten, Khecheopalri)
- Tibetan Buddhist traditions (Nyingma, Kagyu schools)
- Sikkim's unique Buddhist culture and festivals
- Himalayan geography and travel in Sikkim
- Local customs, permits, and travel logistics
- Sacred sites and pilgrimage routes
- Buddhist philosophy, practices, and teachings

**General Knowledge Areas:**
- Travel and tourism advice
- Cultural and historical information
- General questions about Buddhism and spirituality
- Geography, science, technology
- Lifestyle and wellness topics
- Educational content
- Current events and general knowledge

%s

Guidelines:
- For Sikkim/Buddhist questions: Provide detailed, accurate information with practical travel advice
- For general questions: Give helpful, accurate answers while being concise
- Always be respectful when discussing religious or cultural topics
- If unsure about something, acknowledge the limitation
- Maintain a friendly, conversational tone
- When relevant, connect topics back to Buddhist wisdom or Sikkim culture
- Keep responses informative but engaging (2-4 paragraphs depending on complexity)
`

// buildSystemPrompt подставляет блок контекста (может быть пустым) в промпт гида
func buildSystemPrompt(monasteryContext string) string {
	return fmt.Sprintf(systemPromptTemplate, monasteryContext)
}

// renderMonasteryContext блок с данными монастыря для промпта
func renderMonasteryContext(m *domain.Monastery) string {
	var b strings.Builder

	b.WriteString("\nCurrent Monastery Context:\n")
	fmt.Fprintf(&b, "Name: %s\n", m.Name)
	fmt.Fprintf(&b, "Location: %s, %s\n", m.Location, m.District)
	fmt.Fprintf(&b, "Altitude: %s\n", m.Altitude)
	fmt.Fprintf(&b, "Tradition: %s\n", m.Tradition)
	fmt.Fprintf(&b, "Founded: %s\n", m.Founded)
	fmt.Fprintf(&b, "Description: %s\n", m.Description)
	fmt.Fprintf(&b, "Architecture: %s\n", m.Architecture)
	fmt.Fprintf(&b, "Spiritual Significance: %s\n", m.SpiritualSignificance)
	fmt.Fprintf(&b, "Cultural Importance: %s\n", m.CulturalImportance)
	fmt.Fprintf(&b, "Highlights: %s\n", strings.Join(m.Highlights, ", "))
	fmt.Fprintf(&b, "Visiting Hours: %s\n", m.VisitingHours)
	fmt.Fprintf(&b, "Festivals: %s\n", strings.Join(m.FestivalNames(), ", "))
	fmt.Fprintf(&b, "Travel Info: Best time - %s\n", m.TravelInfo.BestTimeToVisit)

	return b.String()
}
