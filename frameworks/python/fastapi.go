package python

import (
	"github.com/dublyo/dockergen/frameworks"
)

// FastAPI returns the FastAPI framework, served by uvicorn
func FastAPI() frameworks.Framework {
	return frameworks.Framework{
		Key:         frameworks.FastAPI,
		Name:        "FastAPI",
		Label:       "FastAPI",
		Family:      frameworks.FamilyPython,
		Port:        8000,
		HostPort:    8000,
		Description: "FastAPI modern Python web framework",
		URL:         "https://fastapi.tiangolo.com",
		Template:    fastapiTemplate,
		Markers: frameworks.Markers{
			Requirements: []string{"fastapi"},
			Files:        []string{"app/main.py", "main.py"},
		},
	}
}

const fastapiTemplate = `# Use Python base image
FROM python:{{.Version}}

# Set working directory
WORKDIR /app

# Set environment variables
ENV PYTHONDONTWRITEBYTECODE=1 \
    PYTHONUNBUFFERED=1

# Install system dependencies
RUN apt-get update && apt-get install -y \
    build-essential \
    && rm -rf /var/lib/apt/lists/*

# Install Python dependencies
COPY requirements.txt .
RUN pip install --no-cache-dir -r requirements.txt

# Copy application code
COPY ./app ./app

# Expose port
EXPOSE 8000

# Start the application with uvicorn
CMD ["uvicorn", "app.main:app", "--host", "0.0.0.0", "--port", "8000"]`
