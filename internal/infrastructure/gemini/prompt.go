package gemini

import (
	"fmt"
	"strings"

	"github.com/ecoswap/recommender/internal/domain"
)

// buildPrompt renders the recommendation prompt for one original product and
// its ranked alternatives. The model is asked for JSON so the response can
// be mapped back onto the alternatives.
func buildPrompt(original *domain.Product, alternatives []domain.Product) string {
	var b strings.Builder

	b.WriteString("You are an AI sustainability expert helping users make eco-friendly shopping choices.\n\n")

	b.WriteString("ORIGINAL PRODUCT:\n")
	writeProduct(&b, original)

	b.WriteString("\nALTERNATIVE PRODUCTS:\n")
	for i := range alternatives {
		fmt.Fprintf(&b, "%d. %s\n", i+1, alternatives[i].Name)
		writeProduct(&b, &alternatives[i])
		b.WriteString("\n")
	}

	b.WriteString(`TASK:
For each alternative product, provide:
1. A compelling 80-120 word comparison explaining why this alternative is more sustainable
2. Calculate eco credits (10-50 points based on sustainability improvement)
3. Calculate carbon savings compared to the original product
4. A brief reason for recommendation (focus on environmental benefits)

Format your response as JSON:
{
  "recommendations": [
    {
      "productId": "product_id",
      "comparison": "compelling comparison text",
      "ecoCreds": number,
      "carbonSavings": number,
      "reasonForRecommendation": "brief reason"
    }
  ],
  "reasoning": "Overall explanation of why these alternatives are better"
}

Focus on:
- Environmental impact reduction
- Sustainability benefits
- Carbon footprint improvements
- Organic/ethical advantages
- Long-term environmental value
`)

	return b.String()
}

func writeProduct(b *strings.Builder, p *domain.Product) {
	organic := "No"
	if p.IsOrganic {
		organic = "Yes"
	}

	fmt.Fprintf(b, "- Name: %s\n", p.Name)
	fmt.Fprintf(b, "- Description: %s\n", p.Description)
	fmt.Fprintf(b, "- Price: $%.2f\n", p.Price)
	fmt.Fprintf(b, "- Carbon Intensity: %.2f kg CO2e\n", p.CarbonIntensity)
	fmt.Fprintf(b, "- Organic: %s\n", organic)
	fmt.Fprintf(b, "- Sustainability Score: %d/100\n", p.SustainabilityScore)
	fmt.Fprintf(b, "- Category: %s\n", p.Category)
}
