package llm

import (
	"fmt"
)

// buildTailoringPrompt creates the resume tailoring prompt.
func buildTailoringPrompt(req TailorRequest) (prompt string) {
	prompt = fmt.Sprintf(`You are an expert ATS-optimized resume tailoring specialist who helps job seekers optimize their resumes to match specific job descriptions. I need you to tailor a LaTeX resume for a %s position at %s.

## STEP 1: ANALYZE THE JOB DESCRIPTION
First, carefully analyze the job description below and extract:
1. Essential hard skills and technical requirements (at least 5-8)
2. Essential soft skills (at least 3-5)
3. Key responsibilities of the role
4. Industry-specific terminology and buzzwords
5. Required years of experience or qualifications
6. Company values or culture indicators

Job Description:
%s

## STEP 2: ANALYZE THE RESUME
Now, analyze the current LaTeX resume and identify:
1. Which required skills from the job description are already present
2. Which relevant experiences could be reframed to better match the job requirements
3. Which achievements could be quantified or enhanced to demonstrate required competencies

Current Resume:
%s

## STEP 3: APPLY STRATEGIC TAILORING
Now, tailor the resume using these specific strategies:

1. SUMMARY/OBJECTIVE SECTION:
- Include the exact job title (%s)
- Incorporate 3-4 of the most important skills from the job description
- Mirror the language used in the company's job description
- Briefly highlight relevant experience that matches the job requirements

2. SKILLS SECTION:
- Prioritize skills mentioned in the job description
- Use exact keywords/phrases from the job description
- Organize skills to highlight those most relevant to the position first

3. WORK EXPERIENCE SECTION:
- Rewrite bullet points to incorporate key requirements and terminology from the job description
- Begin each bullet with strong action verbs aligned with the job requirements
- Quantify achievements with specific metrics, percentages, and outcomes where possible
- Focus on accomplishments that demonstrate the skills needed for the %s role

4. EDUCATION & CERTIFICATIONS:
- Emphasize education/certifications that align with the job requirements
- Include relevant coursework or projects if they align with the job requirements

## CRITICAL REQUIREMENTS:
- Maintain the EXACT same LaTeX structure and formatting
- Preserve all LaTeX commands and environments
- Ensure special LaTeX characters (%%, $, #, &, etc.) are properly escaped
- Do not add or remove any LaTeX environments or major structural elements
- Ensure each bullet point includes at least one keyword from the job description
- Match terminology exactly (e.g., if they say "project management", use "project management" not "managing projects")
- Make tailoring subtle and natural - it should not appear obviously modified for one specific job

Return ONLY the modified LaTeX code with no explanations or comments outside the LaTeX document.`,
		req.Position, req.Company, req.JobDescription, req.Template, req.Position, req.Position)

	return prompt
}

// buildExtractionPrompt creates the company/position extraction prompt.
func buildExtractionPrompt(jobDescription string) (prompt string) {
	prompt = fmt.Sprintf(`Please extract the company name and position title from the following job description.
Return ONLY a JSON object with two fields: "company" and "position".
Do not include any explanation, just the JSON object.

Job Description:
%s

Example response format:
{
    "company": "Example Corp",
    "position": "Senior Software Engineer"
}`, jobDescription)

	return prompt
}
