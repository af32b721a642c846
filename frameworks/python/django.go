package python

import (
	"github.com/dublyo/dockergen/frameworks"
)

// Django returns the Django framework, served by gunicorn
func Django() frameworks.Framework {
	return frameworks.Framework{
		Key:         frameworks.Django,
		Name:        "Django",
		Label:       "Django",
		Family:      frameworks.FamilyPython,
		Port:        8000,
		HostPort:    8000,
		Description: "Django batteries-included Python web framework",
		URL:         "https://www.djangoproject.com",
		Template:    djangoTemplate,
		Markers: frameworks.Markers{
			Requirements: []string{"django"},
			Files:        []string{"manage.py"},
		},
	}
}

const djangoTemplate = `# Use Python base image
FROM python:{{.Version}}

# Set working directory
WORKDIR /app

# Set environment variables
ENV PYTHONDONTWRITEBYTECODE=1 \
    PYTHONUNBUFFERED=1 \
    DJANGO_SETTINGS_MODULE=core.settings

# Install system dependencies
RUN apt-get update && apt-get install -y \
    build-essential \
    libpq-dev \
    && rm -rf /var/lib/apt/lists/*

# Install Python dependencies
COPY requirements.txt .
RUN pip install --no-cache-dir -r requirements.txt

# Copy project files
COPY . .

# Collect static files
RUN python manage.py collectstatic --noinput

# Expose port
EXPOSE 8000

# Start Gunicorn
CMD ["gunicorn", "--bind", "0.0.0.0:8000", "core.wsgi:application"]`
