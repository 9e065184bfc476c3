package prompt

// Ethics builds the single-turn analysis prompt: a fixed instructional
// preamble with the required JSON schema, followed by the page text
// verbatim. The negative bias is intentional: the burden of proof sits on
// the brand, and absent evidence must read as absent, not assumed.
func Ethics(pageText string) string {
	return ethicsPreamble + pageText + "\n"
}

const ethicsPreamble = `Analyze the ethical aspects of the following product based on available text and additional industry knowledge.
Provide insights into the brand's labor practices, sustainability claims, and animal welfare policies.
Maintain a negative bias. The burden of proof is on the brand to prove its ethical claims and if there
isnt any proof then that should be reflected in the analysis.

Return ONLY a valid JSON object with these fields. PLEASE DO NOT RETURN ANY OTHER TEXT PLEASE JUST THE JSON:
{
"Product Name": "string",
"Brand": "string",
"Animal Materials": "integer (0-1)", 0 if no animal materials, 1 if animal materials present
"Material Composition": "string",
"Manufacturing Country": "string",  If not specified, check which country this brand usually manufactures in and say that.
"Sustainability Practices": "string",
"Labor Conditions": "string", If no Info, check and provide historical record of the brand.
"Animal Welfare Policies": "string",
"Transparency Level": "string",
"Historical Brand Insights": "string",
"Detailed Analysis": "string",
"Related Links": "string", Add plain text links to the brands code of conduct/sustainibility practises etc.
"Overall Ethical Rating": "integer (0-10)"
}

Ensure the response is a **properly formatted JSON object** with no extra text. PLEASE MAKE SURE NOT TO ADD ANYTHING BEFORE OR AFTER THE JSON OBJECT JUST THE JSON
IS ALL THAT IS NEEDED.
Here is the product page text:
`
